package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lk16/checkers/internal/checkers"
)

func main() {
	boardString := flag.String("board", "", "the position to show, defaults to the starting position")
	flag.Parse()

	if *boardString == "" {
		checkers.NewBoardStart().Print()
		return
	}

	game, err := checkers.NewGameFromString(*boardString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	game.Board().Print()
	fmt.Println(game.CurrentPlayer(), "to move")
}
