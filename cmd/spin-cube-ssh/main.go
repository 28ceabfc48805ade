package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/spin-cube/server"
)

var (
	addrFlag    = flag.String("addr", ":2222", "Listen address")
	hostKeyFlag = flag.String("hostkey", "host_key", "Host key path, generated if missing")
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	flag.Parse()

	if err := server.EnsureHostKey(*hostKeyFlag); err != nil {
		log.Fatalf("Host key error: %v", err)
	}

	sshServer := server.NewSSHServer(*addrFlag, *hostKeyFlag)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Printf("received %s, shutting down", sig)
		sshServer.Close()
	}()

	log.Printf("serving spinning cube on %s (connect with ssh -t)", *addrFlag)
	if err := sshServer.Start(); err != nil {
		log.Fatalf("SSH server error: %v", err)
	}
}
