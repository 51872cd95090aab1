// genqlient is a GraphQL client generator for Go.
//
// [GitHub]: https://github.com/Khan/genqlient
package main

import (
	"github.com/Khan/genqlient/generate"
)

func main() {
	generate.Main()
}
