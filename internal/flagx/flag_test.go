package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	configFlags := []string{"-c", "--config"}

	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "keeps short flag and its value",
			args:    []string{"-c", "conf.json", "-a", "localhost"},
			allowed: configFlags,
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "keeps equals form whole",
			args:    []string{"--config=alt.json", "-a", "localhost"},
			allowed: configFlags,
			want:    []string{"--config=alt.json"},
		},
		{
			name:    "keeps repeated occurrences in order",
			args:    []string{"--config=first.json", "-c", "second.json", "-x", "1"},
			allowed: configFlags,
			want:    []string{"--config=first.json", "-c", "second.json"},
		},
		{
			name:    "drops everything when nothing matches",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: configFlags,
			want:    []string{},
		},
		{
			name:    "trailing flag without value survives",
			args:    []string{"-c"},
			allowed: configFlags,
			want:    []string{"-c"},
		},
		{
			name:    "next dash token is not consumed as a value",
			args:    []string{"-c", "-notvalue"},
			allowed: configFlags,
			want:    []string{"-c"},
		},
		{
			name:    "equals value may itself start with dashes",
			args:    []string{"--config=--weird.json"},
			allowed: []string{"--config"},
			want:    []string{"--config=--weird.json"},
		},
		{
			name:    "several allowed flags interleaved with foreign ones",
			args:    []string{"-a", "localhost:8080", "-c", "conf.json", "--other", "x"},
			allowed: []string{"-c", "-a"},
			want:    []string{"-a", "localhost:8080", "-c", "conf.json"},
		},
		{
			name:    "empty input",
			args:    []string{},
			allowed: configFlags,
			want:    []string{},
		},
		{
			name:    "same flag twice keeps both values",
			args:    []string{"-c", "one.json", "-c", "two.json"},
			allowed: []string{"-c"},
			want:    []string{"-c", "one.json", "-c", "two.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "short form", args: []string{"testbin", "-c", "/path/short.json"}, want: "/path/short.json"},
		{name: "long form", args: []string{"testbin", "-config", "/path/long.json"}, want: "/path/long.json"},
		{name: "absent", args: []string{"testbin", "-x", "1", "-y", "2"}, want: ""},
		{name: "last occurrence wins", args: []string{"testbin", "-c", "/path/1.json", "-config", "/path/2.json"}, want: "/path/2.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			assert.Equal(t, tt.want, JsonConfigFlags())
		})
	}
}
