package http

import (
	"net/http"
	"os"
	"path"
	"time"

	"github.com/aussiebroadwan/garage/pkg/httpx"
)

// serveFile streams an attachment with its sniffed content type and closes
// it afterwards.
func serveFile(w http.ResponseWriter, r *http.Request, f *os.File, ctype string) {
	defer f.Close()

	modtime := time.Time{}
	if st, err := f.Stat(); err == nil {
		modtime = st.ModTime()
	}
	httpx.NoCache(w)
	w.Header().Set("Content-Type", ctype)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	http.ServeContent(w, r, path.Base(f.Name()), modtime, f)
}
