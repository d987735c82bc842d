package settings

// Permissions is the merged permissions object. The field order keeps
// allow before deny in serialized output.
type Permissions struct {
	Allow []string `json:"allow"`
	Deny  []string `json:"deny"`
}

// Merge combines documents into a single output map. Permission lists
// are concatenated in document order with duplicates dropped, so each
// entry keeps the position of its first appearance. All non-permission
// top-level keys come from the first document only; later documents'
// extra keys are ignored.
//
// The permissions object is always present in the result, even when
// both merged lists are empty.
func Merge(docs []*Document) (map[string]interface{}, error) {
	if len(docs) == 0 {
		return nil, ErrNoInputFiles
	}

	allowLists := make([][]string, 0, len(docs))
	denyLists := make([][]string, 0, len(docs))
	for _, doc := range docs {
		allowLists = append(allowLists, doc.AllowList())
		denyLists = append(denyLists, doc.DenyList())
	}

	merged := docs[0].ExtraSettings()
	merged[PermissionsKey] = &Permissions{
		Allow: mergeLists(allowLists),
		Deny:  mergeLists(denyLists),
	}
	return merged, nil
}

// MergeFiles loads every path in order and merges the resulting
// documents. Any single load failure aborts the whole merge.
func MergeFiles(paths []string) (map[string]interface{}, error) {
	if len(paths) == 0 {
		return nil, ErrNoInputFiles
	}

	docs := make([]*Document, 0, len(paths))
	for _, path := range paths {
		doc, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return Merge(docs)
}

// mergeLists flattens lists into one slice, keeping only the first
// occurrence of each value. Membership is tracked in a set so the pass
// stays linear. The result is never nil, so empty lists serialize as
// [] rather than null.
func mergeLists(lists [][]string) []string {
	seen := make(map[string]struct{})
	result := []string{}

	for _, list := range lists {
		for _, item := range list {
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			result = append(result, item)
		}
	}
	return result
}
