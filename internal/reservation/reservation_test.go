package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConflicts(t *testing.T) {
	base := time.Date(2026, 8, 28, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		other time.Time
		want  bool
	}{
		{"mesmo horário", base, true},
		{"uma hora depois", base.Add(time.Hour), true},
		{"uma hora antes", base.Add(-time.Hour), true},
		{"um minuto antes da janela fechar", base.Add(2*time.Hour - time.Minute), true},
		{"exatamente duas horas depois", base.Add(2 * time.Hour), false},
		{"exatamente duas horas antes", base.Add(-2 * time.Hour), false},
		{"três horas depois", base.Add(3 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Conflicts(base, tt.other))
			assert.Equal(t, tt.want, Conflicts(tt.other, base), "conflito é simétrico")
		})
	}
}
