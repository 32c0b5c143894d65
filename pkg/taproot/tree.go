package taproot

// LeafProof pairs a tapscript leaf with its bottom-up sibling-hash
// path to the MAST root.
type LeafProof struct {
	Leaf  Leaf
	Proof [][32]byte
}

// IndexedTree is a fully-built MAST: its root node plus, for every
// leaf, a precomputed inclusion proof.
type IndexedTree struct {
	Root       Tree
	LeafProofs []LeafProof

	indexByHash map[[32]byte]int
}

// AssembleMAST builds a MAST over leaves, returning the root alongside
// every leaf's Merkle inclusion proof. Leaves are combined pairwise,
// left to right; a trailing odd leaf merges into the last branch.
func AssembleMAST(leaves ...Leaf) *IndexedTree {
	if len(leaves) == 1 {
		leaf := leaves[0]
		return &IndexedTree{
			Root:       leaf,
			LeafProofs: []LeafProof{{Leaf: leaf}},
			indexByHash: map[[32]byte]int{
				leaf.Hash(): 0,
			},
		}
	}

	t := &IndexedTree{
		LeafProofs:  make([]LeafProof, len(leaves)),
		indexByHash: make(map[[32]byte]int, len(leaves)),
	}
	for i, leaf := range leaves {
		t.LeafProofs[i].Leaf = leaf
		t.indexByHash[leaf.Hash()] = i
	}

	var branches []Tree
	for i := 0; i < len(leaves); i += 2 {
		if i == len(leaves)-1 {
			// Odd leaf out merges with the last branch already built.
			merged := branches[len(branches)-1]
			leaf := leaves[i]
			mergedHash := merged.Hash()

			t.addProofNode(i, mergedHash)
			for _, descendant := range leafDescendants(merged) {
				t.addProofNode(t.indexByHash[descendant.Hash()], leaf.Hash())
			}

			branches[len(branches)-1] = Branch{Left: merged, Right: leaf}
			continue
		}

		left, right := leaves[i], leaves[i+1]
		branches = append(branches, Branch{Left: left, Right: right})

		leftHash, rightHash := left.Hash(), right.Hash()
		t.addProofNode(i, rightHash)
		t.addProofNode(i+1, leftHash)
	}

	for len(branches) > 1 {
		left, right := branches[0], branches[1]
		newBranch := Branch{Left: left, Right: right}
		branches = append(branches[2:], newBranch)

		leftHash, rightHash := left.Hash(), right.Hash()
		for _, descendant := range leafDescendants(left) {
			t.addProofNode(t.indexByHash[descendant.Hash()], rightHash)
		}
		for _, descendant := range leafDescendants(right) {
			t.addProofNode(t.indexByHash[descendant.Hash()], leftHash)
		}
	}

	t.Root = branches[0]
	return t
}

func (t *IndexedTree) addProofNode(leafIndex int, sibling [32]byte) {
	t.LeafProofs[leafIndex].Proof = append(t.LeafProofs[leafIndex].Proof, sibling)
}

// leafDescendants returns every Leaf reachable from node.
func leafDescendants(node Tree) []Leaf {
	switch n := node.(type) {
	case Leaf:
		return []Leaf{n}
	case Branch:
		return append(leafDescendants(n.Left), leafDescendants(n.Right)...)
	default:
		return nil
	}
}

// GetMerkleProofs returns every leaf's inclusion proof, in the order
// leaves were supplied to AssembleMAST.
func (t *IndexedTree) GetMerkleProofs() []LeafProof {
	return t.LeafProofs
}

// ProofFor returns the inclusion proof for the given leaf, if it is
// part of the tree.
func (t *IndexedTree) ProofFor(leaf Leaf) (LeafProof, bool) {
	idx, ok := t.indexByHash[leaf.Hash()]
	if !ok {
		return LeafProof{}, false
	}
	return t.LeafProofs[idx], true
}
