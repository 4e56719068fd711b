package main

import (
	"log"

	"github.com/sjzar/reaper/cmd/reaper"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	reaper.Execute()
}
