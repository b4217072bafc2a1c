package main

import (
	"fmt"
	"io"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\033[H\033[2J"

const banner = `Agentev: Search Tool

                                  ./*.   /@@@@@@@@@
                                , .@@@@@@@@@@@@@@@@@
                                @ @@@(  @@@@@@@@@@@@@
                                 @@@@@@@@@@@@@@%.@@@@@
                               @@@@@@@@@@@@(    @@@@@@@@@@@@@@
                                              %@@@@@@@@/.&
                           @@ &#   ,@@@@@@@@@@@@ &@@@@
                        %& @@@@@@@@@@@@@&/@@@@@@@@@@@@
                                .@ @@@@@@@@@@@@@@@@@@
                                   @@@@@@@@@@@@@@@@%
                                   .@@@@@@@@@@@@@@@@
                                   *@@@@@@@@@@@@@@@@.@@
                                    @@@@@@@@@@@@@@@  @@@@@
                                   ,  @ .@@@@@@%  @@@@@@@@@#
                                @   @@. %@@@@   @@@@@@@@@@@@@@@
                               @@@ @@@ @@@    @@@@@@@@@@@@@@@@@
                              @@@ @@@#&@@* @@@@@@@@@@@@@@@@@
                              @@ @@@ .@@    @@@@@@@@@@@@@@@&
                              @ @@@, @@@  ,@@@@@@@@@  ,@
                             @  @@@ @@@  @@@   @* @@@ ,
`

// PrintBanner clears the screen and prints the start-up banner.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, clearScreen+banner+"\n")
}
