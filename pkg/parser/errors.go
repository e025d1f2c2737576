package parser

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrInvalidTags 标签数量不是两个时返回的哨兵错误，可配合 errors.Is 使用。
var ErrInvalidTags = errors.New("parser: invalid tags")

// InvalidTagsError 携带出错的标签配置。
type InvalidTagsError struct {
	Tags []string
}

func (e *InvalidTagsError) Error() string {
	quoted := make([]string, len(e.Tags))
	for i, t := range e.Tags {
		quoted[i] = strconv.Quote(t)
	}

	return fmt.Sprintf("parser: expected exactly 2 tags (open, close), got %d: [%s]",
		len(e.Tags), strings.Join(quoted, ", "))
}

// Is 使 errors.Is(err, ErrInvalidTags) 成立。
func (e *InvalidTagsError) Is(target error) bool {
	return target == ErrInvalidTags
}

func missingTags(tags []string) error {
	return &InvalidTagsError{Tags: slices.Clone(tags)}
}
