package devserver

import (
	"errors"
	"io/fs"
	"net/http"
)

// corsHeaders are set on every response. net/http writes header keys sorted,
// so the order here is not the order on the wire.
var corsHeaders = [...][2]string{
	{"Access-Control-Allow-Origin", "*"},
	{"Access-Control-Allow-Methods", "GET, OPTIONS"},
	{"Access-Control-Allow-Headers", "*"},
}

// WithCORS returns a handler that sets permissive CORS headers before
// forwarding to h. The headers are in place before h writes its status, so
// redirects and error responses carry them too.
func WithCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hdr := w.Header()
		for _, kv := range corsHeaders {
			hdr.Set(kv[0], kv[1])
		}
		h.ServeHTTP(w, r)
	})
}

// NewHandler serves files beneath root with CORS headers on every response.
func NewHandler(root string) http.Handler {
	return serveFS(http.Dir(root))
}

func serveFS(fsys http.FileSystem) http.Handler {
	return WithCORS(http.FileServer(unreadableAsMissing{fsys}))
}

// unreadableAsMissing reports files the server may not read as missing, so
// they are answered with 404 instead of 403.
type unreadableAsMissing struct {
	fs http.FileSystem
}

func (u unreadableAsMissing) Open(name string) (http.File, error) {
	f, err := u.fs.Open(name)
	if err != nil {
		return nil, hidePermission(err)
	}
	return unreadableFile{f}, nil
}

type unreadableFile struct {
	http.File
}

func (f unreadableFile) Stat() (fs.FileInfo, error) {
	fi, err := f.File.Stat()
	return fi, hidePermission(err)
}

func hidePermission(err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fs.ErrNotExist
	}
	return err
}
