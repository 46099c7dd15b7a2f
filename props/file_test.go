package props

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromYAML(t *testing.T) {
	data := []byte(`
contextPath: /nacos
serverAddr:
  - 10.0.0.1:8848
  - 10.0.0.2:8848
client:
  timeout: 3000
  secure: true
  endpoint: ~
`)

	m, err := FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, Map{
		"contextPath":    "/nacos",
		"serverAddr":     "10.0.0.1:8848,10.0.0.2:8848",
		"client.timeout": "3000",
		"client.secure":  "true",
	}, m)
}

func TestFromYAML_Empty(t *testing.T) {
	m, err := FromYAML(nil)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestFromYAML_Errors(t *testing.T) {
	_, err := FromYAML([]byte("contextPath: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse YAML properties")

	_, err = FromYAML([]byte("- not\n- a\n- mapping\n"))
	assert.Error(t, err)

	_, err = FromYAML([]byte("servers:\n  - host: a\n"))
	assert.ErrorContains(t, err, `property "servers"`)

	_, err = FromYAML([]byte("client:\n  1: x\n"))
	assert.ErrorContains(t, err, `property "client": mapping keys must be strings`)

	_, err = FromYAML([]byte("servers:\n  - 1: a\n"))
	assert.ErrorContains(t, err, `property "servers"`)
}

func TestParseProperties(t *testing.T) {
	data := []byte(`
# comment
! also a comment
contextPath=/nacos
serverAddr = 10.0.0.1:8848,10.0.0.2:8848
endpoint: http://example.com:8080
quoted="/quoted"
single='/single'
=novalue
noseparator
`)

	m := ParseProperties(data)

	assert.Equal(t, Map{
		"contextPath": "/nacos",
		"serverAddr":  "10.0.0.1:8848,10.0.0.2:8848",
		"endpoint":    "http://example.com:8080",
		"quoted":      "/quoted",
		"single":      "/single",
	}, m)
}
