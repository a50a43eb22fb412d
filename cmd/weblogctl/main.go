// Program weblogctl sends webhook deliveries at a running weblogd, either a
// single probe or a concurrent flood for eyeballing access-log output.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	cmdSend  = "send"
	cmdFlood = "flood"

	flagAddr   = "addr"
	flagPath   = "path"
	flagMethod = "method"
	flagCount  = "count"
	flagConc   = "concurrency"

	defaultAddr   = "http://127.0.0.1:8080"
	defaultPath   = "/webhook"
	defaultMethod = "POST"
	defaultCount  = 100
	defaultConc   = 4
	timeoutSec    = 5
)

func send(ctx context.Context, client *http.Client, method, url string) error {
	req, err := http.NewRequestWithContext(ctx, method, url, strings.NewReader("{}"))
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s [send|flood] [flags]", os.Args[0])
	}
	cmd := os.Args[1]
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	addr := fs.String(flagAddr, defaultAddr, "base URL of the webhook host")
	path := fs.String(flagPath, defaultPath, "request path, query string included")
	method := fs.String(flagMethod, defaultMethod, "request method")
	count := fs.Int(flagCount, defaultCount, "number of requests to flood")
	conc := fs.Int(flagConc, defaultConc, "concurrent senders")
	fs.Parse(os.Args[2:])

	ctx, cancel := context.WithTimeout(context.Background(), timeoutSec*time.Second)
	defer cancel()
	client := &http.Client{}
	url := *addr + *path

	switch cmd {
	case cmdSend:
		if err := send(ctx, client, *method, url); err != nil {
			log.Fatalf("send: %v", err)
		}
	case cmdFlood:
		var wg sync.WaitGroup
		per := *count / *conc
		for g := 0; g < *conc; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < per; i++ {
					if err := send(ctx, client, *method, url); err != nil {
						log.Printf("flood: %v", err)
						return
					}
				}
			}()
		}
		wg.Wait()
	default:
		log.Fatalf("unknown command %q", cmd)
	}
}
