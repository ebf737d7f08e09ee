// Command polybool runs boolean clipping and offset jobs described by a
// YAML file against the vattikit/polybool engine.
package main

import "github.com/vattikit/polybool/cmd/polybool/cmd"

func main() {
	cmd.Execute()
}
