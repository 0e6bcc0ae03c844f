// Serve the built hoverplane (index.html, wasm_exec.js, main.wasm, img/)
//  it will start at -port and if it is being used it will try the next one
package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"strings"
)

func main() {
	dir := flag.String("dir", ".", "directory to serve")
	port := flag.Int("port", 8080, "first port to try")
	tries := flag.Int("tries", 20, "ports to try before giving up")
	flag.Parse()

	listener, err := listen(*port, *tries)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Listening at %s serving %s\n", listener.Addr(), *dir)
	log.Fatal(http.Serve(listener, logger(handler(*dir))))
}

func listen(port, tries int) (net.Listener, error) {
	var lastErr error
	for i := 0; i < tries; i++ {
		addr := fmt.Sprintf(":%d", port+i)
		listener, err := net.Listen("tcp", addr)
		if err != nil {
			fmt.Fprintln(os.Stderr, "err opening port", err)
			lastErr = err
			continue
		}
		return listener, nil
	}
	return nil, fmt.Errorf("no free port in %d..%d: %w", port, port+tries-1, lastErr)
}

// handler serves dir, making sure wasm gets the mime type streaming
// instantiation requires.
func handler(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, ".wasm") {
			w.Header().Set("Content-Type", "application/wasm")
		}
		fs.ServeHTTP(w, r)
	})
}

func logger(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Println(r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	}
}
