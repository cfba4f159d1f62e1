package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/pprof"

	"github.com/lukaszgryglicki/raycloud/internal/raycloud"
)

func main() {
	raycloud.Debug = os.Getenv("DEBUG") != ""
	raycloud.Progress = os.Getenv("PROGRESS") != ""
	level := slog.LevelInfo
	if raycloud.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := "scenes/config.yaml"
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := raycloud.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
