package middleware

import (
	"fmt"
	"mime"
	"net/http"

	apperrors "flamesblue/pkg/errors"
	httputil "flamesblue/pkg/http"
	"flamesblue/pkg/logger"
)

// ContentTypeValidation rejects bodies on POST, PUT and PATCH that are not
// declared as JSON.
func ContentTypeValidation(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if requiresContentType(r.Method) {
				contentType := extractContentType(r.Header.Get("Content-Type"))

				if contentType != "application/json" {
					log.Warn("Invalid Content-Type header",
						"request_id", GetRequestID(r.Context()),
						"content_type", contentType,
						"path", r.URL.Path,
						"method", r.Method,
					)

					err := apperrors.UnsupportedMediaType(
						fmt.Sprintf("Content-Type must be application/json, got %q", contentType))
					_ = httputil.WriteError(w, err)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func requiresContentType(method string) bool {
	return method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch
}

func extractContentType(header string) string {
	if header == "" {
		return ""
	}

	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return mediaType
}
