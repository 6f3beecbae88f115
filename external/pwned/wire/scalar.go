package wire

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
)

func decodeScalar(raw []byte, dst any) error {
	raw = bytes.TrimSpace(raw)

	switch p := dst.(type) {
	case *string:
		return decodeString(raw, p)
	case *int64:
		return decodeInt(raw, p)
	case *int:
		var n int64
		if err := decodeInt(raw, &n); err != nil {
			return err
		}
		*p = int(n)
		return nil
	case *float64:
		return decodeFloat(raw, p)
	case *bool:
		return decodeBool(raw, p)
	default:
		return sonic.Unmarshal(raw, dst)
	}
}

// decodeString keeps numbers and booleans as their literal text.
func decodeString(raw []byte, dst *string) error {
	switch kindOf(raw) {
	case "string":
		return sonic.Unmarshal(raw, dst)
	case "number", "bool":
		*dst = string(raw)
		return nil
	default:
		return crerr.Newf("cannot read %s as string", kindOf(raw))
	}
}

func decodeInt(raw []byte, dst *int64) error {
	text, err := numericText(raw)
	if err != nil {
		return err
	}

	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		*dst = n
		return nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return crerr.Wrapf(err, "parse integer %q", text)
	}
	if f != math.Trunc(f) {
		return crerr.Newf("number %q is not an integer", text)
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return crerr.Newf("number %q overflows a 64-bit integer", text)
	}
	*dst = int64(f)
	return nil
}

func decodeFloat(raw []byte, dst *float64) error {
	text, err := numericText(raw)
	if err != nil {
		return err
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return crerr.Wrapf(err, "parse number %q", text)
	}
	*dst = f
	return nil
}

func numericText(raw []byte) (string, error) {
	switch kindOf(raw) {
	case "number":
		return string(raw), nil
	case "string":
		var text string
		if err := sonic.Unmarshal(raw, &text); err != nil {
			return "", crerr.Wrap(err, "decode numeric string")
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return "", crerr.New("empty numeric string")
		}
		return text, nil
	default:
		return "", crerr.Newf("cannot read %s as number", kindOf(raw))
	}
}

func decodeBool(raw []byte, dst *bool) error {
	switch kindOf(raw) {
	case "bool":
		return sonic.Unmarshal(raw, dst)
	case "number":
		f, err := strconv.ParseFloat(string(raw), 64)
		if err != nil {
			return crerr.Wrapf(err, "parse boolean %q", raw)
		}
		*dst = f != 0
		return nil
	case "string":
		var text string
		if err := sonic.Unmarshal(raw, &text); err != nil {
			return crerr.Wrap(err, "decode boolean string")
		}
		text = strings.TrimSpace(text)
		if text == "" {
			*dst = false
			return nil
		}
		b, err := strconv.ParseBool(text)
		if err != nil {
			return crerr.Wrapf(err, "parse boolean %q", text)
		}
		*dst = b
		return nil
	default:
		return crerr.Newf("cannot read %s as boolean", kindOf(raw))
	}
}

func scalarName(dst any) string {
	switch dst.(type) {
	case *string:
		return "string"
	case *int64, *int:
		return "integer"
	case *float64:
		return "number"
	case *bool:
		return "boolean"
	default:
		return "value"
	}
}
