// pkg/render/engo/main_test.go
package engo

import (
	"os"
	"testing"

	"github.com/EngoEngine/engo"
)

// TestMain provides the message bus engo normally creates in engo.Run, since
// render components announce z-index changes through it.
func TestMain(m *testing.M) {
	if engo.Mailbox == nil {
		engo.Mailbox = &engo.MessageManager{}
	}
	os.Exit(m.Run())
}
