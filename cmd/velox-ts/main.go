// velox-ts generates TypeScript model classes from schema documents.
//
//	velox-ts gen --schema ./schema --target ./src/generated
//	velox-ts gen --watch
//	velox-ts print ./schema/Post.yaml
package main

import "github.com/syssam/veloxts/internal/cli"

func main() {
	cli.Execute()
}
