package servers_test

import (
	"strings"
	"testing"

	"dietrack/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger_DocumentIsValid(t *testing.T) {
	swagger, err := servers.GetSwagger()

	require.NoError(t, err)
	assert.Equal(t, "dietrack", swagger.Info.Title)
	assert.NotNil(t, swagger.Paths.Find("/lots/{lotId}/movements"))
}

func TestGetSwagger_EveryOperationIsRouted(t *testing.T) {
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)

	router := &recordingRouter{}
	servers.RegisterHandlers(router, nil)

	var documented []string
	for path, item := range swagger.Paths.Map() {
		for method := range item.Operations() {
			documented = append(documented, method+" "+toEchoPath(path))
		}
	}

	assert.ElementsMatch(t, documented, router.routes)
}

func toEchoPath(path string) string {
	path = strings.ReplaceAll(path, "{", ":")
	return strings.ReplaceAll(path, "}", "")
}
