package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Helpers return the zero slog.Attr for nil or empty input; slog skips it.

// Group nests attributes under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors", keyed by argument index.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Duration records d under "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Latency records d under "latency".
func Latency(d time.Duration) slog.Attr {
	return slog.Duration("latency", d)
}

// Elapsed records the time since start under "elapsed".
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// RequestID records an HTTP request ID.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Method records an HTTP method.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Path records a URL path.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// StatusCode records an HTTP status code.
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// BytesIn records an input size.
func BytesIn(n int64) slog.Attr {
	return slog.Int64("bytes_in", n)
}

// BytesOut records an output size.
func BytesOut(n int64) slog.Attr {
	return slog.Int64("bytes_out", n)
}

// Component records the emitting component.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Action records the operation being performed.
func Action(action string) slog.Attr {
	return slog.String("action", action)
}

// Result records an outcome such as "hit" or "miss".
func Result(result string) slog.Attr {
	return slog.String("result", result)
}

// Key records an arbitrary value, skipping nil.
func Key(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}

// Style records a QR style name.
func Style(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("style", name)
}

// Size records an image edge length in pixels.
func Size(px int) slog.Attr {
	return slog.Int("size", px)
}

// Compressor records the compression backend.
func Compressor(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("compressor", name)
}

// PayloadLength records the uncompressed payload length in bytes.
func PayloadLength(n int) slog.Attr {
	return slog.Int("payload_length", n)
}

// StorageKey records an object key.
func StorageKey(key string) slog.Attr {
	if key == "" {
		return slog.Attr{}
	}
	return slog.String("storage_key", key)
}
