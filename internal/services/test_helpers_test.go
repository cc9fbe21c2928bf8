package services_test

import (
	"fmt"

	"github.com/dishflow/dishflow-web/pkg/logger"
)

func init() {
	if err := logger.Initialize(logger.Config{
		Level:       "error",
		Environment: "test",
	}); err != nil {
		panic(fmt.Sprintf("failed to initialize test logger: %v", err))
	}
}
