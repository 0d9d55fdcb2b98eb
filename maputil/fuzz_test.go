package maputil_test

import (
	"testing"

	json "github.com/goccy/go-json"

	"github.com/nubs/primaids/maputil"
)

// FuzzGetNested ensures that path traversal never panics on arbitrary paths
// and delimiters, and that the strict and non-strict forms always agree.
//
// Run with: go test -fuzz=FuzzGetNested ./maputil/
func FuzzGetNested(f *testing.F) {
	f.Add("db.login.username", ".")
	f.Add("db/login", "/")
	f.Add("", ".")
	f.Add("...", ".")
	f.Add("db.port.inner", ".")
	f.Add("a..b", "")

	f.Fuzz(func(t *testing.T, path, delim string) {
		m := configMap()
		_, ok := maputil.GetNested(m, path, delim)
		_, err := maputil.GetNestedOrFail(m, path, delim)
		if ok == (err != nil) {
			t.Fatalf("GetNested ok=%v but GetNestedOrFail err=%v for path %q delim %q", ok, err, path, delim)
		}
	})
}

// FuzzUnmarshalJSON ensures the JSON codec never panics on arbitrary input
// and that anything it accepts can be re-marshalled.
func FuzzUnmarshalJSON(f *testing.F) {
	f.Add([]byte(`{}`))
	f.Add([]byte(`{"a":1}`))
	f.Add([]byte(`{"a":{"b":[1,"x",null]}}`))
	f.Add([]byte(`[1,2]`))
	f.Add([]byte(`not json`))

	f.Fuzz(func(t *testing.T, data []byte) {
		m := maputil.New[any]()
		if err := json.Unmarshal(data, m); err != nil {
			return
		}
		if _, err := json.Marshal(m); err != nil {
			t.Fatalf("Marshal failed after successful Unmarshal: %v", err)
		}
	})
}
