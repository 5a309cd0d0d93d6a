package allocation

import (
	"encoding/json"
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	tests := []struct {
		name  string
		build func(w *jsonObjectWriter)
		want  string
	}{
		{
			name:  "empty object",
			build: func(w *jsonObjectWriter) {},
			want:  `{}`,
		},
		{
			name: "keeps order",
			build: func(w *jsonObjectWriter) {
				w.Append("b", "hello")
				w.Append("a", 1)
			},
			want: `{"b":"hello","a":1}`,
		},
		{
			name: "embed object",
			build: func(w *jsonObjectWriter) {
				w.Append("a", 1)
				w.Embed(json.RawMessage(`{"c":3,"d":4}`))
				w.Append("b", 2)
			},
			want: `{"a":1,"c":3,"d":4,"b":2}`,
		},
		{
			name: "embed empty object",
			build: func(w *jsonObjectWriter) {
				w.Append("a", 1)
				w.Embed(json.RawMessage(`{}`))
			},
			want: `{"a":1}`,
		},
		{
			name: "optional fields",
			build: func(w *jsonObjectWriter) {
				w.Append("a", 0) // a zero value is actually added
				w.Optional("b", "")
				w.Optional("c", 0.0)
				w.Optional("d", "hello")
			},
			want: `{"a":0,"d":"hello"}`,
		},
		{
			name: "embed from",
			build: func(w *jsonObjectWriter) {
				w.Append("a", 1)
				w.EmbedFrom(struct {
					C int    `json:"c"`
					D string `json:"d"`
				}{3, "hello"})
				w.Append("b", 2)
			},
			want: `{"a":1,"c":3,"d":"hello","b":2}`,
		},
		{
			name: "prefix from",
			build: func(w *jsonObjectWriter) {
				w.Append("id", "spy")
				w.PrefixFrom("target", jsonTarget{Percentage{40}})
			},
			want: `{"id":"spy","targetMode":"PERCENTAGE","targetPercent":40}`,
		},
		{
			name: "prefix from nested",
			build: func(w *jsonObjectWriter) {
				w.PrefixFrom("x", map[string]any{"list": []int{1, 2}, "obj": map[string]int{"k": 1}})
			},
			want: `{"xList":[1,2],"xObj":{"k":1}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w jsonObjectWriter
			tt.build(&w)
			got, err := w.MarshalJSON()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}

	t.Run("prefix from a non object", func(t *testing.T) {
		var w jsonObjectWriter
		w.PrefixFrom("x", []int{1})
		if _, err := w.MarshalJSON(); err == nil {
			t.Error("expected an error")
		}
	})
}
