// Command compactstrprof exercises CompactString's allocation paths under
// pprof so growth/shrink/promotion behavior can be inspected with the
// standard Go profiling tools.
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/foldwire/compactstr"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	short := []string{"hi", "azerty", "hello world", "a longer inline string"}
	long := "0123456789012345678901234567890123456789012345678901234567890123456789"

	for i := 0; i < 100000; i++ {
		for _, s := range short {
			cs := compactstr.New(s)
			_ = cs.Len()
		}
		cs := compactstr.New(long)
		_ = cs.PushStr("more")
		_ = cs.ShrinkToFit()
		cs.Release()
	}

	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
