// Command simbelmyne is a UCI-compliant chess engine. It reads commands
// from stdin and writes UCI protocol responses to stdout, following
// http://wbec-ridderkerk.nl/html/UCIProtocol.html.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"
)

var (
	buildVersion = "(devel)"
	version      = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Parse()
	if *version {
		println("simbelmyne", buildVersion)
		return
	}

	log.SetOutput(os.Stdout)
	log.SetPrefix("info string ")
	log.SetFlags(0)

	uci := NewUCI()
	in := bufio.NewScanner(os.Stdin)
	in.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for in.Scan() {
		if err := uci.Execute(in.Text()); err != nil {
			if err == errQuit {
				break
			}
			log.Println("error:", err)
		}
	}
}
