package cmd_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	navskema "github.com/reoring/navskema"
	"github.com/reoring/navskema/appnav"
	"github.com/reoring/navskema/cmd/navskema/cmd"
	"github.com/reoring/navskema/i18n"
)

func run(t *testing.T, s *navskema.Schema, args ...string) (string, error) {
	t.Helper()
	root := cmd.NewRootCmd(s)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--color", "never"}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestFind(t *testing.T) {
	out, err := run(t, appnav.Schema(), "find", appnav.TabsNS)
	require.NoError(t, err)
	assert.Contains(t, out, `tabs "(tabs)"`)
	assert.Contains(t, out, "path: Root > (drawer) > (tabs)")
	assert.Contains(t, out, "initialRouteName: home")
	assert.Contains(t, out, "children: 3")

	_, err = run(t, appnav.Schema(), "find", "nope")
	assert.ErrorContains(t, err, "configuration missing")
}

func TestResolve(t *testing.T) {
	out, err := run(t, appnav.Schema(), "resolve", "settings")
	require.NoError(t, err)
	assert.JSONEq(t, `{"headerShown":true,"title":"Settings","drawerLabel":"Settings"}`, out)
}

func TestValidate(t *testing.T) {
	out, err := run(t, appnav.Schema(), "validate")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	bad, err := navskema.NewGroup(navskema.KindStack, "Other", navskema.GroupSpec{InitialRouteName: "ghost"})
	require.NoError(t, err)
	s, err := navskema.New(bad)
	require.NoError(t, err)
	out, err = run(t, s, "validate")
	assert.EqualError(t, err, "2 issue(s) found")
	assert.Contains(t, out, "invalid_initial_route /0/initialRouteName")
	assert.Contains(t, out, "root_missing /")
}

func TestValidate_Japanese(t *testing.T) {
	defer i18n.SetLanguage("en")
	s, err := navskema.New()
	require.NoError(t, err)
	out, err := run(t, s, "--lang", "ja", "validate")
	require.Error(t, err)
	assert.Contains(t, out, "トップレベルのスタック Root がありません")
}

func TestDump(t *testing.T) {
	out, err := run(t, appnav.Schema(), "dump")
	require.NoError(t, err)
	back, err := navskema.DecodeJSON([]byte(out), navskema.DecodeOpt{})
	require.NoError(t, err)
	assert.Nil(t, back.Validate())

	out, err = run(t, appnav.Schema(), "dump", "-f", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Root")

	out, err = run(t, appnav.Schema(), "dump", "--format", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "[[roots]]")

	_, err = run(t, appnav.Schema(), "dump", "-f", "xml")
	assert.ErrorContains(t, err, `unsupported format "xml"`)
}

func TestDump_FormatFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navskema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: yaml\n"), 0o600))

	out, err := run(t, appnav.Schema(), "--config", path, "dump")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "- kind: stack"), out)
}

func TestConfig_BlankValuesFallBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navskema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: \"\"\nlang: \"\"\n"), 0o600))

	out, err := run(t, appnav.Schema(), "--config", path, "dump")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "["), out)
}

func TestSchema(t *testing.T) {
	out, err := run(t, appnav.Schema(), "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"$ref": "#/$defs/node"`)
}

func TestTree(t *testing.T) {
	out, err := run(t, appnav.Schema(), "tree")
	require.NoError(t, err)
	for _, want := range []string{"/drawer/settings", "/0/children/0/children/0", "subs"} {
		assert.Contains(t, out, want)
	}
}

func TestRender(t *testing.T) {
	out, err := run(t, appnav.Schema(), "render", appnav.DrawerNS)
	require.NoError(t, err)
	assert.Contains(t, out, "drawer Root > (drawer) (initial (tabs))")
	assert.Contains(t, out, "SettingsScreen")

	out, err = run(t, appnav.Schema(), "render", "-p", "web", appnav.TabsNS)
	require.NoError(t, err)
	assert.Contains(t, out, "/drawer/account")

	_, err = run(t, appnav.Schema(), "render", "-p", "tv")
	assert.ErrorContains(t, err, "unsupported platform")

	_, err = run(t, appnav.Schema(), "render", "home")
	assert.ErrorContains(t, err, "not a navigator")
}

func TestCheck(t *testing.T) {
	out, err := run(t, appnav.Schema(), "check")
	require.NoError(t, err)
	assert.Equal(t, "ok: 3 navigators bind identically ((drawer), (tabs), Root)\n", out)
}

func TestVersion(t *testing.T) {
	out, err := run(t, appnav.Schema(), "version")
	require.NoError(t, err)
	assert.Equal(t, "navskema "+cmd.Version+"\n", out)
}

func TestLogLevel_Rejected(t *testing.T) {
	_, err := run(t, appnav.Schema(), "--log-level", "verbose", "version")
	assert.ErrorContains(t, err, `log level: not a valid logrus Level: "verbose"`)
}

func TestColorMode_Rejected(t *testing.T) {
	_, err := run(t, appnav.Schema(), "--color", "sometimes", "version")
	assert.ErrorContains(t, err, "unsupported color mode")
}
