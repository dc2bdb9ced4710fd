package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Domain field helpers

func Component(name string) Field {
	return String("component", name)
}

func Operation(op string) Field {
	return String("operation", op)
}

func NodeID(id string) Field {
	return String("node_id", id)
}

func LinkIndex(i int) Field {
	return Int("link_index", i)
}

func Country(c string) Field {
	return String("country", c)
}

func PairKey(from, to string) Field {
	return String("pair", from+"->"+to)
}

func NodeCount(n int) Field {
	return Int("nodes", n)
}

func LinkCount(n int) Field {
	return Int("links", n)
}

func PathCount(n int) Field {
	return Int("paths", n)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func File(path string) Field {
	return String("file", path)
}

func ReportID(id string) Field {
	return String("report_id", id)
}
