package fake

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// JSON builds a random document leaning on the shapes the inference
// engine has to work for: date and uuid keys, datetime values, nested
// objects and the occasional mixed array.
func JSON() map[string]any {
	return object(0, 4)
}

func object(depth, maxDepth int) map[string]any {
	nkeys := 1 + rand.Intn(8)
	obj := make(map[string]any, nkeys)
	for i := 0; i < nkeys; i++ {
		obj[key()] = value(depth, maxDepth)
	}
	return obj
}

func key() string {
	switch rand.Intn(6) {
	case 0:
		return day().Format("2006-01-02")
	case 1:
		return uuid.NewString()
	default:
		return word(1 + rand.Intn(12))
	}
}

func value(depth, maxDepth int) any {
	if depth+1 < maxDepth && rand.Intn(100) < 25 {
		if rand.Intn(2) == 0 {
			return object(depth+1, maxDepth)
		}
		return array(depth, maxDepth)
	}
	return scalar()
}

func scalar() any {
	switch rand.Intn(8) {
	case 0:
		return rand.Int63n(1_000_000)
	case 1:
		return rand.Float64() * 1000
	case 2:
		return rand.Intn(2) == 0
	case 3:
		return nil
	case 4:
		return day().Format(time.RFC3339)
	case 5:
		return day().Format("2006-01-02")
	case 6:
		return uuid.NewString()
	default:
		return word(2 + rand.Intn(24))
	}
}

func array(depth, maxDepth int) []any {
	n := rand.Intn(6)
	vs := make([]any, 0, n)
	for i := 0; i < n; i++ {
		// mostly homogeneous, sometimes not
		if i > 0 && rand.Intn(100) >= 10 {
			vs = append(vs, vs[0])
			continue
		}
		vs = append(vs, value(depth+1, maxDepth))
	}
	return vs
}

func day() time.Time {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	return start.Add(time.Duration(rand.Int63n(int64(6 * 365 * 24 * time.Hour))))
}

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

func word(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
