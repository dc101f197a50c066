package main

import (
	"bufio"
	"fmt"
	"os"

	"targetrange/internal/audio"
	"targetrange/internal/config"
	"targetrange/internal/game"
	"targetrange/internal/loop"
	"golang.org/x/term"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	var sound game.Sound = game.NullSound{}
	if config.GetEnvBool("GAME_AUDIO", true) {
		synth, audioErr := audio.NewSynth()
		if audioErr != nil {
			fmt.Fprintf(os.Stderr, "audio disabled: %v\r\n", audioErr)
		} else {
			sound = synth
			defer synth.Close()
		}
	}

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, loop.Options{Sound: sound}); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
