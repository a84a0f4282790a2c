// SPDX-License-Identifier: MIT

package etree

import "fmt"

// DFSTree appends the postorder of the subtree rooted at root to post,
// starting at position k, and returns the next free position.
//
// head[p] is the first child of p and next[c] the next sibling of c (None
// terminated); head is consumed. stack needs room for the subtree height.
// Complexity: O(subtree size).
func DFSTree(root, k int, post, head, next, stack []int) int {
	top := 0
	stack[0] = root
	for top >= 0 {
		p := stack[top]
		if c := head[p]; c == None {
			// all children done
			top--
			post[k] = p
			k++
		} else {
			head[p] = next[c]
			top++
			stack[top] = c
		}
	}

	return k
}

// Postorder returns the nodes of the forest in postorder: every node after
// all its descendants, siblings in ascending order, trees by ascending root.
//
// Returns ErrMalformed for parents outside [None, n) and ErrCycleDetected
// when some nodes are not reachable from a root.
// Complexity: O(n).
func Postorder(parent []int) ([]int, error) {
	n := len(parent)
	head := make([]int, n)
	next := make([]int, n)
	for j := range head {
		head[j] = None
	}
	// 1. Link children in reverse so lists come out ascending.
	for j := n - 1; j >= 0; j-- {
		p := parent[j]
		if p < None || p >= n {
			return nil, fmt.Errorf("Postorder: parent[%d]=%d with n=%d: %w", j, p, n, ErrMalformed)
		}
		if p == None {
			continue
		}
		next[j] = head[p]
		head[p] = j
	}
	// 2. One depth-first walk per root.
	post := make([]int, n)
	stack := make([]int, n)
	k := 0
	for j := 0; j < n; j++ {
		if parent[j] == None {
			k = DFSTree(j, k, post, head, next, stack)
		}
	}
	if k != n {
		return nil, fmt.Errorf("Postorder: %d of %d nodes unreachable from a root: %w", n-k, n, ErrCycleDetected)
	}

	return post, nil
}
