package dungeon

import (
	"os"
	"testing"

	"crawl-server/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()
	os.Exit(m.Run())
}
