package cli

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/ardnew/arith/cli/cmd"
	"github.com/ardnew/arith/log"
)

func TestLogConfig_Scan(t *testing.T) {
	defer log.Config(
		log.WithLevel(log.DefaultLevel),
		log.WithFormat(log.DefaultFormat),
		log.WithTimeLayout(log.DefaultTimeLayout),
		log.WithCaller(log.DefaultCaller),
		log.WithPretty(log.DefaultPretty),
	)

	tests := []struct {
		name string
		args []string
		want logConfig
	}{
		{
			"assigned values",
			[]string{"run", "--log-level=debug", "--log-format=text"},
			logConfig{Level: "debug", Format: "text", Pretty: true},
		},
		{
			"separate values",
			[]string{"--log-level", "trace", "--log-time-layout", "Kitchen", "x.arith"},
			logConfig{Level: "trace", TimeLayout: "Kitchen", Pretty: true},
		},
		{
			"booleans",
			[]string{"--log-caller", "--no-log-pretty"},
			logConfig{Caller: true},
		},
		{
			"assigned booleans",
			[]string{"--log-caller=false", "--no-log-pretty=false", "--log-pretty=bogus"},
			logConfig{Pretty: true},
		},
		{
			"value flag without value",
			[]string{"--log-level", "--log-caller"},
			logConfig{Caller: true, Pretty: true},
		},
		{
			"stops at terminator",
			[]string{"--", "--log-level=error"},
			logConfig{Pretty: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := logConfig{Pretty: true}
			got.scan(tt.args)

			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestRun_Init(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CACHE_HOME", dir)
	t.Setenv("HOME", dir)

	exit := func(code int) { t.Fatalf("unexpected exit %d", code) }

	err := Run(t.Context(), exit, "--no-log-pretty", "--checked", "init")
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(configPath(baseConfig + ".yaml"))
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(string(data), baseConfig+":\n") {
		t.Errorf("expected %s namespace, got %q", baseConfig, data)
	}

	conf := loadConfig(t, string(data))
	if conf["checked"] != true {
		t.Errorf("expected checked=true in %q", data)
	}

	// The generated file is read back as configuration.
	err = Run(t.Context(), exit, "init")
	if !errors.Is(err, cmd.ErrFileExists) {
		t.Errorf("expected ErrFileExists, got %v", err)
	}

	err = Run(t.Context(), exit, "init", "--force")
	if err != nil {
		t.Fatal(err)
	}
}
