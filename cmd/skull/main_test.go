package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunFairDeck(t *testing.T) {
	assert := assert.New(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-seed", "00ff"}, &stdout, &stderr)
	assert.Equal(0, code, stderr.String())

	out := stdout.String()
	assert.Contains(out, "fair: true")
	assert.Contains(out, "card 0: skull true")
	assert.Contains(out, "card 3: rose true")
	assert.Equal(4, strings.Count(out, "commitment "))

	var again bytes.Buffer
	run([]string{"-seed", "00ff"}, &again, &stderr)
	assert.Equal(out, again.String())
}

func TestRunCheatingDeck(t *testing.T) {
	assert := assert.New(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-deck", "skull,skull,rose,rose"}, &stdout, &stderr)
	assert.Equal(0, code)
	assert.Contains(stdout.String(), "fair: false")
}

func TestRunBadFlags(t *testing.T) {
	assert := assert.New(t)

	var stdout, stderr bytes.Buffer
	assert.Equal(2, run([]string{"-deck", "skull,crown"}, &stdout, &stderr))
	assert.Contains(stderr.String(), "invalid card")
	assert.Equal(2, run([]string{"-seed", "xyz"}, &stdout, &stderr))
	assert.Equal(2, run([]string{"-nope"}, &stdout, &stderr))
}
