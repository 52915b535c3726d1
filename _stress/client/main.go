package main

import (
	"context"
	"flag"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/siegeai/sleuth/_stress/fake"
	"github.com/siegeai/sleuth/client"
)

func main() {
	server := flag.String("server", "http://localhost:8632", "sleuthd base url")
	workers := flag.Int("workers", 4, "concurrent callers")
	flag.Parse()

	for i := 1; i < *workers; i++ {
		go caller(*server)
	}
	caller(*server)
}

func caller(server string) {
	c, err := client.NewClient(server)
	if err != nil {
		panic(err)
	}

	for {
		call(c)
		time.Sleep(10 * time.Millisecond)
	}
}

func call(c *client.Client) {
	doc, err := json.Marshal(fake.JSON())
	if err != nil {
		panic(err)
	}

	out, err := c.InferSchema(context.Background(), doc)
	if err != nil {
		panic(err)
	}

	slog.Info("completed request", "doc", len(doc), "schema", len(out))
}
