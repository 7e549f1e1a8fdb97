package glogger

import (
	"fmt"
	"math"
	"strconv"
	"time"
	"unicode/utf8"
)

// AppendFields renders fields as " key=value" pairs onto dst.
// Strings are quoted only when they contain spaces, quotes, '=' or
// non-printable runes, so simple values stay readable in native log lines.
func AppendFields(dst []byte, fields []Field) []byte {
	for i := range fields {
		f := &fields[i]
		if f.Kind == KindError && f.Err == nil {
			continue
		}
		dst = append(dst, ' ')
		dst = append(dst, f.K...)
		dst = append(dst, '=')
		dst = appendValue(dst, f)
	}
	return dst
}

func appendValue(dst []byte, f *Field) []byte {
	switch f.Kind {
	case KindString:
		return appendString(dst, f.Str)
	case KindInt64:
		return strconv.AppendInt(dst, f.Int64, 10)
	case KindUint64:
		return strconv.AppendUint(dst, f.Uint64, 10)
	case KindFloat64:
		return appendFloat(dst, f.Float64)
	case KindBool:
		return strconv.AppendBool(dst, f.Bool)
	case KindDuration:
		return append(dst, f.Dur.String()...)
	case KindTime:
		return f.Time.AppendFormat(dst, time.RFC3339Nano)
	case KindError:
		return appendString(dst, f.Err.Error())
	case KindAny:
		if f.Any == nil {
			return append(dst, "null"...)
		}
		return appendString(dst, fmt.Sprint(f.Any))
	default:
		return append(dst, "null"...)
	}
}

func appendFloat(dst []byte, v float64) []byte {
	switch {
	case math.IsNaN(v):
		return append(dst, "NaN"...)
	case math.IsInf(v, 1):
		return append(dst, "+Inf"...)
	case math.IsInf(v, -1):
		return append(dst, "-Inf"...)
	}
	return strconv.AppendFloat(dst, v, 'g', -1, 64)
}

func appendString(dst []byte, s string) []byte {
	if needsQuote(s) {
		return strconv.AppendQuote(dst, s)
	}
	return append(dst, s...)
}

func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if c <= ' ' || c == '=' || c == '"' || c == 0x7f {
				return true
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError {
			return true
		}
		i += size
	}
	return false
}
