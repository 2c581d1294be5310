package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		valueFlags []string
		boolFlags  []string
		want       []string
	}{
		{
			name:       "value flag with separate value",
			args:       []string{"-c", "conf.json", "-a", "localhost"},
			valueFlags: []string{"-c", "-config"},
			want:       []string{"-c", "conf.json"},
		},
		{
			name:       "inline value",
			args:       []string{"-root=/mnt/clipboards", "-x", "1"},
			valueFlags: []string{"-root"},
			want:       []string{"-root=/mnt/clipboards"},
		},
		{
			name:       "unknown flags and positionals dropped",
			args:       []string{"-x", "1", "--y=2", "positional"},
			valueFlags: []string{"-c"},
			want:       []string{},
		},
		{
			name:       "value flag at end kept without value",
			args:       []string{"-c"},
			valueFlags: []string{"-c"},
			want:       []string{"-c"},
		},
		{
			name:       "next dash token is not a value",
			args:       []string{"-c", "-u", "jdoe"},
			valueFlags: []string{"-c", "-u"},
			want:       []string{"-c", "-u", "jdoe"},
		},
		{
			name:       "bool flag does not swallow positional",
			args:       []string{"-s3", "names.txt", "-d", "dsn"},
			valueFlags: []string{"-d"},
			boolFlags:  []string{"-s3"},
			want:       []string{"-s3", "-d", "dsn"},
		},
		{
			name:       "bool flag inline form",
			args:       []string{"-s3=false"},
			boolFlags:  []string{"-s3"},
			want:       []string{"-s3=false"},
		},
		{
			name:       "repeated flag keeps order",
			args:       []string{"-u", "a", "-u", "b"},
			valueFlags: []string{"-u"},
			want:       []string{"-u", "a", "-u", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.valueFlags, tt.boolFlags...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -c", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/short.json"}
		assert.Equal(t, "/path/short.json", JsonConfigFlags())
	})

	t.Run("long -config", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", "/path/long.json"}
		assert.Equal(t, "/path/long.json", JsonConfigFlags())
	})

	t.Run("no config flag", func(t *testing.T) {
		os.Args = []string{"testbin", "-u", "jdoe"}
		assert.Empty(t, JsonConfigFlags())
	})
}
