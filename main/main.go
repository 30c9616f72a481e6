package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/mcwire"
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
	buf := make([]byte, mcwire.MaxVarlongLen)
	for i := 0; i < 10000; i++ {
		v := int32(i) - 5000
		n, _ := mcwire.PutVarint(buf, 0, v)
		got, _, _ := mcwire.Varint(buf[:n], 0)
		p := mcwire.Position{X: got, Y: int32(i % 256), Z: -got}
		_ = mcwire.PositionFromUint64(p.Uint64())
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
