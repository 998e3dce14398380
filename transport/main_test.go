package transport_test

import (
	"os"
	"testing"

	"github.com/viant/lifecycle/internal/logging"
)

func TestMain(m *testing.M) {
	logging.ConfigureTests()
	os.Exit(m.Run())
}
