package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghayaruae/crm-server/internal/model"
)

func TestDate_Scan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     any
		want    string
		wantErr bool
	}{
		{name: "time value", src: time.Date(2025, 3, 9, 17, 30, 0, 0, time.FixedZone("GST", 4*3600)), want: "2025-03-09"},
		{name: "bytes", src: []byte("2025-01-31"), want: "2025-01-31"},
		{name: "datetime string", src: "2025-01-31 10:00:00", want: "2025-01-31"},
		{name: "null", src: nil, want: ""},
		{name: "garbage", src: "31/01/2025", wantErr: true},
		{name: "unsupported type", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var d model.Date
			err := d.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDate_JSON(t *testing.T) {
	t.Parallel()

	d, err := model.ParseDate("2025-06-01")
	require.NoError(t, err)

	b, err := json.Marshal(struct {
		D model.Date  `json:"d"`
		Z model.Date  `json:"z"`
		P *model.Date `json:"p"`
	}{D: d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2025-06-01","z":null,"p":null}`, string(b))

	var back struct {
		D model.Date `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"d":"2025-06-01T00:00:00Z"}`), &back))
	assert.True(t, back.D.Equal(d.Time))

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", v)
}

func TestStatusOptions(t *testing.T) {
	t.Parallel()

	opts := model.StatusOptions()
	require.Len(t, opts, 10)
	assert.Equal(t, model.StatusOption{Value: "0", Label: "Pending"}, opts[0])
	assert.Equal(t, model.StatusOption{Value: "7", Label: "Returned"}, opts[model.StatusReturned])
	assert.Equal(t, "Returned Received", model.StatusLabel(9))
	assert.Empty(t, model.StatusLabel(10))
	assert.Equal(t, 35.0, model.OrderItem{Price: 17.5, Qty: 2}.LineAmount())
}
