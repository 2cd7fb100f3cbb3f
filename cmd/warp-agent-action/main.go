package main

import "github.com/oshokin/warp-agent-action/cmd/warp-agent-action/cmd"

func main() {
	cmd.Execute()
}
