package pmap_test

import (
	"log"
	"os"
	"testing"

	"github.com/lleo/stringutil"
	"github.com/pkg/errors"

	"github.com/lleo/go-persistent-map/seq"
)

var numKvs = 10 * 1024

// KVS is the shared key/value corpus: distinct string keys in a
// deterministic stream, values are their positions.
var KVS []seq.Entry

var Inc = stringutil.Lower.Inc

func TestMain(m *testing.M) {
	log.SetFlags(log.Lshortfile)

	var logfile, err = os.Create("test.log")
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to os.Create(\"test.log\")"))
	}
	log.SetOutput(logfile)

	log.Println("TestMain: and so it begins...")

	KVS = buildKeyVals(numKvs)

	var xit = m.Run()

	log.Println("TestMain: the end.")
	_ = logfile.Close()
	os.Exit(xit)
}

func buildKeyVals(num int) []seq.Entry {
	var kvs = make([]seq.Entry, num)

	var s = "aaa"
	for i := 0; i < num; i++ {
		kvs[i] = seq.Entry{Key: s, Val: i}
		s = Inc(s)
	}

	return kvs
}
