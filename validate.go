// Copyright 2025 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package castfmt

// supportedForParsing reports whether the parser accepts the element type
// at all. Elements outside this set are rejected during validation; every
// element inside it has a parse branch in parseElement (see parse.go).
func supportedForParsing(typ elementType) bool {
	switch typ {
	case elemSimpleLiteral, elemDoubleQuotedLiteral, elemWhitespace,
		elemYYYY, elemYYY, elemYY, elemY, elemRRRR, elemRR, elemYCommaYYY,
		elemMM, elemMON, elemMONTH,
		elemDD, elemDDD,
		elemHH, elemHH12, elemHH24,
		elemMI,
		elemSS, elemSSSSS, elemFFN,
		elemAM, elemPM, elemAMDots, elemPMDots,
		elemTZH, elemTZM:
		return true
	}
	return false
}

// categoryIndex collects per-category and per-type element occurrences for
// the structural checks. Only the first two elements per category are kept;
// that is enough for every diagnostic.
type categoryIndex struct {
	byCategory map[elementCategory][]*formatElement
	byType     map[elementType]*formatElement
}

func (idx *categoryIndex) firstIn(c elementCategory) *formatElement {
	return idx.byCategory[c][0]
}

// checkNoDuplicateInCategory rejects two elements sharing a category, e.g.
// YY together with RRRR.
func checkNoDuplicateInCategory(c elementCategory, idx *categoryIndex) error {
	if elems := idx.byCategory[c]; len(elems) > 1 {
		return validationErrf(
			"More than one format element in category %s exist: %s and %s",
			c, elems[0].DebugString(), elems[1].DebugString())
	}
	return nil
}

// checkCategoryNotExist rejects any element of category c for the given
// output type, e.g. an Hour element when casting to DATE.
func checkCategoryNotExist(c elementCategory, idx *categoryIndex, outputType OutputType) error {
	if _, ok := idx.byCategory[c]; ok {
		return validationErrf(
			"Format element in category %s (%s) is not allowed for output type %s",
			c, idx.firstIn(c).DebugString(), outputType)
	}
	return nil
}

// checkTypeCategoryExclusive rejects the combination of an element of type
// typ with any element of category c, e.g. HH24 with a meridian indicator.
func checkTypeCategoryExclusive(typ elementType, c elementCategory, idx *categoryIndex) error {
	te, typeOk := idx.byType[typ]
	if _, catOk := idx.byCategory[c]; typeOk && catOk {
		return validationErrf(
			"Format element in category %s (%s) and format element %s cannot exist simultaneously",
			c, idx.firstIn(c).DebugString(), te.DebugString())
	}
	return nil
}

// checkTypesExclusive rejects the combination of two element types, e.g.
// SSSSS with SS.
func checkTypesExclusive(t1, t2 elementType, idx *categoryIndex) error {
	e1, ok1 := idx.byType[t1]
	e2, ok2 := idx.byType[t2]
	if ok1 && ok2 {
		return validationErrf(
			"Format elements %s and %s cannot exist simultaneously",
			e1.DebugString(), e2.DebugString())
	}
	return nil
}

// checkCoexistence requires an element of category c whenever an element of
// any type in types is present, and vice versa. Used for HH/HH12 with the
// meridian indicator.
func checkCoexistence(types []elementType, c elementCategory, idx *categoryIndex) error {
	var present *formatElement
	for _, typ := range types {
		if e, ok := idx.byType[typ]; ok {
			present = e
			break
		}
	}
	_, catOk := idx.byCategory[c]

	if present != nil && !catOk {
		return validationErrf(
			"Format element in category %s is required when format element %s exists",
			c, present.DebugString())
	}
	if catOk && present == nil {
		joined := ""
		for i, typ := range types {
			if i > 0 {
				joined += "/"
			}
			joined += typ.String()
		}
		return validationErrf(
			"Format element of type %s is required when format element in category %s (%s) exists",
			joined, c, idx.firstIn(c).DebugString())
	}
	return nil
}

// validateElementsForParsing enforces the structural rules over an element
// list used for parsing: every element must be in the parseable subset, no
// non-literal type or restricted category may repeat, mutually exclusive
// combinations are rejected, and HH/HH12 must travel with a meridian
// indicator. invalidCategories lists categories the output type disallows.
func validateElementsForParsing(
	elements []formatElement, invalidCategories []elementCategory, outputType OutputType,
) error {
	idx := &categoryIndex{
		byCategory: make(map[elementCategory][]*formatElement),
		byType:     make(map[elementType]*formatElement),
	}

	for i := range elements {
		e := &elements[i]
		if !supportedForParsing(e.typ) {
			return validationErrf(
				"Format element %s is not supported for parsing", e.DebugString())
		}
		if len(idx.byCategory[e.category]) < 2 {
			idx.byCategory[e.category] = append(idx.byCategory[e.category], e)
		}
		if _, ok := idx.byType[e.typ]; ok {
			// Two elements canonicalizing to the same non-literal type, such
			// as "Mi" and "MI", are rejected even when the category check
			// below would not fire.
			if e.category != catLiteral {
				return validationErrf(
					"Format element %s appears more than once in the format string",
					e.DebugString())
			}
		} else {
			idx.byType[e.typ] = e
		}
	}

	for _, c := range []elementCategory{
		catMeridianIndicator, catYear, catMonth, catDay, catHour, catMinute,
	} {
		if err := checkNoDuplicateInCategory(c, idx); err != nil {
			return err
		}
	}

	// DDD carries both month and day information, so a separate month
	// element is contradictory. DDD vs DD is already covered by the day
	// category duplicate check.
	if err := checkTypeCategoryExclusive(elemDDD, catMonth, idx); err != nil {
		return err
	}

	// HH24 vs HH/HH12 is covered by the hour category duplicate check.
	if err := checkTypeCategoryExclusive(elemHH24, catMeridianIndicator, idx); err != nil {
		return err
	}
	if err := checkCoexistence([]elementType{elemHH, elemHH12}, catMeridianIndicator, idx); err != nil {
		return err
	}

	// SSSSS fixes the hour, minute and second, so independent hour, minute
	// and seconds-in-minute elements are contradictory.
	if err := checkTypeCategoryExclusive(elemSSSSS, catHour, idx); err != nil {
		return err
	}
	if err := checkTypeCategoryExclusive(elemSSSSS, catMinute, idx); err != nil {
		return err
	}
	if err := checkTypesExclusive(elemSSSSS, elemSS, idx); err != nil {
		return err
	}

	for _, c := range invalidCategories {
		if err := checkCategoryNotExist(c, idx, outputType); err != nil {
			return err
		}
	}
	return nil
}

// validateElementsForFormatting checks that every element's category is
// allowed for the output type. TIMESTAMP allows all categories; elements
// that cannot be rendered fail later, at render time.
func validateElementsForFormatting(elements []formatElement, outputType OutputType) error {
	var allowed func(elementCategory) bool
	switch outputType {
	case OutputDate:
		allowed = func(c elementCategory) bool {
			switch c {
			case catLiteral, catYear, catMonth, catDay:
				return true
			}
			return false
		}
	case OutputTime:
		allowed = func(c elementCategory) bool {
			switch c {
			case catLiteral, catHour, catMinute, catSecond, catMeridianIndicator:
				return true
			}
			return false
		}
	case OutputDatetime:
		allowed = func(c elementCategory) bool {
			switch c {
			case catLiteral, catYear, catMonth, catDay,
				catHour, catMinute, catSecond, catMeridianIndicator:
				return true
			}
			return false
		}
	case OutputTimestamp:
		return nil
	default:
		return validationErrf("Unsupported output type for validation")
	}

	for i := range elements {
		if !allowed(elements[i].category) {
			return validationErrf(
				"%s does not support %s", outputType, elements[i].DebugString())
		}
	}
	return nil
}
