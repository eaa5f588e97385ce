package main

import (
	"fmt"
	"os"
	"time"

	"crawl-server/internal/infrastructure/storage"
)

func main() {
	if len(os.Args) < 3 {
		printHelp()
		return
	}

	svc := &storage.ReplayService{}

	switch os.Args[1] {
	case "info":
		replay, err := svc.Load(os.Args[2])
		if err != nil {
			fmt.Printf("Failed to load replay: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Seed:      %d\n", replay.Seed)
		fmt.Printf("Recorded:  %s\n", time.Unix(replay.Timestamp, 0).Format(time.RFC3339))
		fmt.Printf("Actions:   %d\n", len(replay.Actions))
	case "dump":
		replay, err := svc.Load(os.Args[2])
		if err != nil {
			fmt.Printf("Failed to load replay: %v\n", err)
			os.Exit(1)
		}
		for i, act := range replay.Actions {
			payload := ""
			if len(act.Payload) > 0 {
				payload = " " + string(act.Payload)
			}
			fmt.Printf("%4d  turn=%-4d %s%s\n", i, act.Turn, act.Action, payload)
		}
	default:
		printHelp()
	}
}

func printHelp() {
	fmt.Println(`Replay Utility - просмотр файлов повторов (.dcrl)
Commands:
  info <file>   - заголовок повтора: зерно, время записи, число действий
  dump <file>   - полный список действий с payload`)
}
