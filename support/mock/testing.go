package mock

import (
	"fmt"
	"reflect"
	"testing"
)

// Checks that every exported actor method has a signature the dispatcher can
// invoke: runtime plus a CBOR-unmarshalable parameter in, one
// CBOR-marshalable value out.
func CheckActorExports(t *testing.T, act interface{ Exports() []interface{} }) {
	for i, m := range act.Exports() {
		if i == 0 { // Send is implicit
			continue
		}
		if m == nil {
			continue
		}

		t.Run(fmt.Sprintf("method%d-type", i), func(t *testing.T) {
			rt := Runtime{t: t}
			rt.verifyExportedMethodType(reflect.ValueOf(m))
		})
	}
}
