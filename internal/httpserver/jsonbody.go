package httpserver

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"gpbooking/internal/shared"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

type jsonBodyKey struct{}

type jsonBody struct {
	value interface{}
}

// JSONBody returns the body decoded by DecodeJSON.
// ok is false when the request was not a JSON request.
func JSONBody(r *http.Request) (value interface{}, ok bool) {
	b, ok := r.Context().Value(jsonBodyKey{}).(jsonBody)
	if !ok {
		return nil, false
	}
	return b.value, true
}

// DecodeJSON parses application/json request bodies before routing.
// Bodies larger than limit bytes are refused; a limit of 0 disables the check.
// The raw body stays readable by downstream handlers.
func DecodeJSON(limit int64, logger *logrus.Logger) Stage {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params, ok := jsonMediaType(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			reject := func(code int, err error) {
				logger.WithFields(logrus.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
					"status": code,
				}).Debugf("Rejected JSON body: %v", err)
				respondWithError(w, code, err.Error())
			}

			if cs := params["charset"]; cs != "" && !strings.HasPrefix(strings.ToLower(cs), "utf-") {
				reject(http.StatusUnsupportedMediaType, fmt.Errorf("%w: %s", shared.ErrUnsupportedCharset, cs))
				return
			}

			raw, err := readBody(w, r, limit)
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					reject(http.StatusRequestEntityTooLarge, shared.ErrBodyTooLarge)
					return
				}
				if errors.Is(err, shared.ErrUnsupportedEncoding) {
					reject(http.StatusUnsupportedMediaType, err)
					return
				}
				reject(http.StatusBadRequest, fmt.Errorf("failed to read request body: %w", err))
				return
			}

			value, err := decodeJSON(raw)
			if err != nil {
				reject(http.StatusBadRequest, err)
				return
			}

			// Downstream handlers see the decoded bytes.
			r.Header.Del("Content-Encoding")
			r.ContentLength = int64(len(raw))
			r.Body = io.NopCloser(bytes.NewReader(raw))
			ctx := context.WithValue(r.Context(), jsonBodyKey{}, jsonBody{value: value})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// jsonMediaType reports whether the request declares a JSON body and returns
// the media type parameters.
func jsonMediaType(r *http.Request) (map[string]string, bool) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return nil, false
	}
	mediaType, params, err := mime.ParseMediaType(ct)
	if err != nil || mediaType != "application/json" {
		return nil, false
	}
	return params, true
}

// readBody reads the request body, undoing any Content-Encoding.
// The limit applies to the decoded bytes.
func readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}

	body, err := contentDecoder(r)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	if limit > 0 {
		body = http.MaxBytesReader(w, body, limit)
	}
	return io.ReadAll(body)
}

// contentDecoder wraps the request body in a reader for its Content-Encoding.
// gzip and deflate (zlib) are understood; identity or no header passes through.
func contentDecoder(r *http.Request) (io.ReadCloser, error) {
	encoding := strings.ToLower(strings.TrimSpace(r.Header.Get("Content-Encoding")))
	switch encoding {
	case "", "identity":
		return r.Body, nil
	case "gzip", "x-gzip":
		zr, err := gzip.NewReader(r.Body)
		if err == io.EOF {
			return http.NoBody, nil
		}
		if err != nil {
			return nil, fmt.Errorf("invalid gzip body: %w", err)
		}
		return zr, nil
	case "deflate":
		zr, err := zlib.NewReader(r.Body)
		if err == io.EOF {
			return http.NoBody, nil
		}
		if err != nil {
			return nil, fmt.Errorf("invalid deflate body: %w", err)
		}
		return zr, nil
	default:
		return nil, fmt.Errorf("%w: %s", shared.ErrUnsupportedEncoding, encoding)
	}
}

// decodeJSON parses raw as a JSON object or array.
// An empty body decodes to an empty object.
func decodeJSON(raw []byte) (interface{}, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return map[string]interface{}{}, nil
	}
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: top-level value must be an object or array", shared.ErrMalformedJSON)
	}

	var value interface{}
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMalformedJSON, err)
	}
	return value, nil
}
