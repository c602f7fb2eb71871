package top

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_setFilter(t *testing.T) {
	testcases := []struct {
		answer string
		want   string
	}{
		{answer: "example", want: "Filters: ok"},
		{answer: "", want: "Filters: regular expression cleared"},
		{answer: "\n", want: "Filters: regular expression cleared"},
		{answer: "[0-", want: "Filters: error parsing regexp: missing closing ]: `[0-`"},
	}

	config := newConfig()
	config.view = config.views["sessions"]
	config.view.OrderKey = 0

	for _, tc := range testcases {
		assert.Equal(t, tc.want, setFilter(tc.answer, config.view))
	}
}

func Test_orderKeyHandlers(t *testing.T) {
	config := newConfig()
	config.view = config.views["sysstat"]

	// drain the views channel, handlers send updated views to the stats goroutine
	go func() {
		for range config.viewCh {
		}
	}()

	// key moves to the right and wraps to the leftmost column
	assert.NoError(t, orderKeyRight(config)(nil, nil))
	assert.Equal(t, 0, config.view.OrderKey) // was 1 of 2 columns, wrapped

	assert.NoError(t, orderKeyLeft(config)(nil, nil))
	assert.Equal(t, config.view.Ncols-1, config.view.OrderKey) // wrapped backward

	close(config.viewCh)
}

func Test_changeWidthHandlers(t *testing.T) {
	config := newConfig()
	config.view = config.views["sysstat"]
	config.view.Cols = []string{"statistic", "value"}
	config.view.ColsWidth = map[int]int{0: 16, 1: 10}
	config.view.OrderKey = 0

	go func() {
		for range config.viewCh {
		}
	}()

	assert.NoError(t, increaseWidth(config)(nil, nil))
	assert.Equal(t, 20, config.view.ColsWidth[0])

	assert.NoError(t, decreaseWidth(config)(nil, nil))
	assert.Equal(t, 16, config.view.ColsWidth[0])

	// width can't be less than length of the column name
	config.view.ColsWidth[0] = 10
	assert.NoError(t, decreaseWidth(config)(nil, nil))
	assert.Equal(t, len("statistic"), config.view.ColsWidth[0])

	close(config.viewCh)
}

func Test_viewSwitchHandler(t *testing.T) {
	config := newConfig()
	config.view = config.views["sessions"]

	go func() {
		for range config.viewCh {
		}
	}()

	viewSwitchHandler(config, "events")
	assert.Equal(t, "events", config.view.Name)

	viewSwitchHandler(config, "sessions")
	assert.Equal(t, "sessions", config.view.Name)

	close(config.viewCh)
}

func Test_changeRefresh(t *testing.T) {
	testcases := []struct {
		answer string
		want   string
	}{
		{answer: "", want: "Refresh: do nothing"},
		{answer: "five", want: "Refresh: do nothing, invalid input"},
		{answer: "0", want: "Refresh: input value should be between 1 and 300"},
		{answer: "301", want: "Refresh: input value should be between 1 and 300"},
		{answer: "5", want: "Refresh: ok"},
	}

	config := newConfig()
	config.view = config.views["sessions"]

	go func() {
		for range config.viewCh {
		}
	}()

	for _, tc := range testcases {
		assert.Equal(t, tc.want, changeRefresh(tc.answer, config))
	}

	close(config.viewCh)
}
