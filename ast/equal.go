package ast

// Equal reports whether two nodes hold the same value. Lists are compared
// element by element, numbers by numeric value and functions by identity.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.nt != b.nt {
		return false
	}

	switch a.nt {
	case NodeTypeList:
		return listEquals(a.List(), b.List())
	case NodeTypeNumber:
		return a.Number().Equal(b.Number())
	case NodeTypeFunction:
		return a.Valuer() == b.Valuer()
	case NodeTypeNil:
		return true
	}

	return a.Value() == b.Value()
}

func listEquals(list1, list2 []*Node) bool {
	if len(list1) != len(list2) {
		return false
	}
	for i := 0; i < len(list1); i++ {
		if !Equal(list1[i], list2[i]) {
			return false
		}
	}
	return true
}
