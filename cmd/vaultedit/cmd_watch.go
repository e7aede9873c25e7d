package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"vaultedit/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <save-file>",
	Short: "Report external changes to a save file",
	Long: `Watch a save file and print a notice whenever another program (usually
the game itself) rewrites it. Useful while editing: saving over a file the
game has since rewritten loses the newer data.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	w, err := watch.New(args[0], logger)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer w.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	fmt.Printf("watching %s (ctrl-c to stop)\n", args[0])
	for {
		select {
		case ev := <-w.Events():
			fmt.Printf("%s  %s changed (%s)\n", ev.At.Format("15:04:05"), ev.Path, ev.Op)
		case <-sigCh:
			fmt.Println("\nstopped")
			return nil
		}
	}
}
