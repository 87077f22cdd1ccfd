package main

import "music-downloader/cmd"

func main() {
	cmd.Execute()
}
