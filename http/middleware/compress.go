package middleware

import (
	"github.com/gorilla/handlers"
)

// Compress gzips or deflates response bodies for clients that accept it.
func Compress() Adapter {
	return handlers.CompressHandler
}
