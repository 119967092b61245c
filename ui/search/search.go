package search

import (
	"github.com/sahilm/fuzzy"

	"github.com/schulstick/portal/models"
)

// FilterCollections fuzzy-matches lesson titles and returns a pruned
// view tree with match highlighting attached. An empty query returns
// the tree unchanged with highlights cleared.
func FilterCollections(collections []*models.CollectionView, query string) []*models.CollectionView {
	if query == "" {
		for _, collection := range collections {
			for _, course := range collection.Courses {
				for _, lesson := range course.Lessons {
					lesson.MatchTexts = nil
				}
			}
		}
		return collections
	}

	var result []*models.CollectionView
	for _, collection := range collections {
		var courses []*models.CourseView
		for _, course := range collection.Courses {
			titles := make([]string, 0, len(course.Lessons))
			for _, lesson := range course.Lessons {
				titles = append(titles, lesson.Data.Title)
			}
			matches := fuzzy.Find(query, titles)
			if len(matches) == 0 {
				continue
			}
			lessons := make([]*models.LessonView, 0, len(matches))
			for _, match := range matches {
				lesson := course.Lessons[match.Index]
				lesson.MatchTexts = BuildMatchTexts(lesson.Data.Title, match.MatchedIndexes)
				lessons = append(lessons, lesson)
			}
			courses = append(courses, &models.CourseView{
				Data:    course.Data,
				Lessons: lessons,
			})
		}
		if len(courses) > 0 {
			result = append(result, &models.CollectionView{
				Data:    collection.Data,
				Courses: courses,
			})
		}
	}
	return result
}

// BuildMatchTexts splits a title into matched and unmatched runs.
// matchedIndexes are byte offsets as returned by the fuzzy matcher.
func BuildMatchTexts(title string, matchedIndexes []int) []models.MatchText {
	matched := make(map[int]bool, len(matchedIndexes))
	for _, idx := range matchedIndexes {
		matched[idx] = true
	}

	var texts []models.MatchText
	byteIdx := 0
	for _, r := range title {
		isMatch := matched[byteIdx]
		if len(texts) > 0 && texts[len(texts)-1].Match == isMatch {
			texts[len(texts)-1].Text += string(r)
		} else {
			texts = append(texts, models.MatchText{Text: string(r), Match: isMatch})
		}
		byteIdx += len(string(r))
	}
	return texts
}
