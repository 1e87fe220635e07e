package badges

import (
	"hash/fnv"
	"strconv"
)

// UnknownID is the stable identifier given to lines that cannot be mapped
// to a semantic key.
func UnknownID(line string) string {
	return "unknown:" + hashLine(line)
}

func hashLine(line string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(line))
	return strconv.FormatUint(h.Sum64(), 16)
}
