package test

import (
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/polkiloo/procurement-console/internal/domain/model"
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString returns a pseudo-random ASCII string within the provided bounds.
// When maxLen equals minLen the resulting string always has that exact length.
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += randomIntn(maxLen - minLen + 1)
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = asciiLetters[randomIntn(len(asciiLetters))]
	}
	return string(buf)
}

// RandomLine returns a fully filled draft line with qty in [1,20] and a two-decimal rate.
func RandomLine() model.LineItem {
	cents := randomIntn(1000000)
	return model.LineItem{
		Vendor:   RandomASCIIString(4, 12),
		Location: RandomASCIIString(4, 12),
		Brand:    RandomASCIIString(3, 8),
		Model:    RandomASCIIString(3, 10),
		Qty:      strconv.Itoa(1 + randomIntn(20)),
		Rate:     strconv.Itoa(cents/100) + "." + pad2(cents%100),
	}
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
