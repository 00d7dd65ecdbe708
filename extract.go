package mustacheusage

// Extract returns a version of the input data containing only the
// values specified in the provided usage analysis. Data is expected in
// the shape produced by decoding JSON: maps, slices and leaf values.
// Map values keep only the keys referenced beneath the matching
// record; slice values have the element usage applied to every item;
// values used as scalars are kept whole.
func Extract(in interface{}, usage Usage) interface{} {
	inMap, isMap := in.(map[string]interface{})
	if !isMap {
		return in
	}
	out := make(map[string]interface{})
	for name, variable := range usage {
		value, exists := inMap[name]
		if !exists {
			continue
		}
		if extracted := extractVariable(variable, value); extracted != nil {
			out[name] = extracted
		}
	}
	return out
}

func extractVariable(v *Variable, in interface{}) interface{} {
	if in == nil {
		return nil
	}
	if list, isList := in.([]interface{}); isList {
		element := v.Elements
		if element == nil {
			element = v
		}
		var outList []interface{}
		for _, value := range list {
			outList = append(outList, extractVariable(element, value))
		}
		return outList
	}
	if v.Scalar || v.Partial {
		return in
	}
	inMap, isMap := in.(map[string]interface{})
	if !isMap {
		return in
	}
	if len(v.Members) == 0 && len(v.Nested) == 0 {
		return in
	}
	out := make(map[string]interface{})
	for _, fields := range []Usage{v.Members, v.Nested} {
		for name, field := range fields {
			value, exists := inMap[name]
			if !exists {
				continue
			}
			if extracted := extractVariable(field, value); extracted != nil {
				out[name] = extracted
			}
		}
	}
	return out
}
