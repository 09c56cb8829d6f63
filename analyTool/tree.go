package analyTool

import (
	"fmt"
	"io"
	"strings"

	"github.com/Hakuto4838/DataStructures.git/maps"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

// CheckBST verifies that internal nodes have two children, sentinel leaves
// have none, and keys strictly increase in order.
func CheckBST[K, V any](t maps.TreeAnalyable[K, V]) error {
	var prev *K
	count := 0
	var walk func(n maps.BinaryNodelike[K, V]) error
	walk = func(n maps.BinaryNodelike[K, V]) error {
		if n.IsSentinel() {
			return nil
		}
		l, r := n.GetLeft(), n.GetRight()
		if l == nil || r == nil {
			return errors.Errorf("node %v has a missing child", n.GetKey())
		}
		if err := walk(l); err != nil {
			return err
		}
		k := n.GetKey()
		if prev != nil && t.Compare(*prev, k) >= 0 {
			return errors.Errorf("keys out of order: %v before %v", *prev, k)
		}
		prev = &k
		count++
		return walk(r)
	}
	if err := walk(t.GetRoot()); err != nil {
		return err
	}
	if count != t.Size() {
		return errors.Errorf("found %d entries, Size() = %d", count, t.Size())
	}
	return nil
}

// CheckAVL 檢查高度是否正確且每個節點左右高度差不超過 1
func CheckAVL[K, V any](t maps.TreeAnalyable[K, V]) error {
	var walk func(n maps.BinaryNodelike[K, V]) (int, error)
	walk = func(n maps.BinaryNodelike[K, V]) (int, error) {
		if n.IsSentinel() {
			return 0, nil
		}
		lh, err := walk(n.GetLeft())
		if err != nil {
			return 0, err
		}
		rh, err := walk(n.GetRight())
		if err != nil {
			return 0, err
		}
		if lh-rh > 1 || rh-lh > 1 {
			return 0, errors.Errorf("node %v unbalanced: left %d, right %d", n.GetKey(), lh, rh)
		}
		h := 1 + max(lh, rh)
		if n.GetProperty() != h {
			return 0, errors.Errorf("node %v stores height %d, actual %d", n.GetKey(), n.GetProperty(), h)
		}
		return h, nil
	}
	if err := CheckBST(t); err != nil {
		return err
	}
	_, err := walk(t.GetRoot())
	return err
}

// CheckRedBlack 檢查紅黑樹性質，property 1 為紅色
func CheckRedBlack[K, V any](t maps.TreeAnalyable[K, V]) error {
	const red = 1
	var walk func(n maps.BinaryNodelike[K, V], parentRed bool) (int, error)
	walk = func(n maps.BinaryNodelike[K, V], parentRed bool) (int, error) {
		isRed := n.GetProperty() == red
		if n.IsSentinel() {
			if isRed {
				return 0, errors.New("red sentinel leaf")
			}
			return 1, nil
		}
		if isRed && parentRed {
			return 0, errors.Errorf("red node %v has a red parent", n.GetKey())
		}
		lb, err := walk(n.GetLeft(), isRed)
		if err != nil {
			return 0, err
		}
		rb, err := walk(n.GetRight(), isRed)
		if err != nil {
			return 0, err
		}
		if lb != rb {
			return 0, errors.Errorf("node %v black height differs: left %d, right %d", n.GetKey(), lb, rb)
		}
		if isRed {
			return lb, nil
		}
		return lb + 1, nil
	}
	if err := CheckBST(t); err != nil {
		return err
	}
	root := t.GetRoot()
	if root.GetProperty() == red {
		return errors.New("root is red")
	}
	_, err := walk(root, false)
	return err
}

// TreeHeight counts internal nodes on the longest root path.
func TreeHeight[K, V any](t maps.TreeAnalyable[K, V]) int {
	var walk func(n maps.BinaryNodelike[K, V]) int
	walk = func(n maps.BinaryNodelike[K, V]) int {
		if n == nil || n.IsSentinel() {
			return 0
		}
		return 1 + max(walk(n.GetLeft()), walk(n.GetRight()))
	}
	return walk(t.GetRoot())
}

// FindDepth 回傳 key 所在深度（根為 0），不會觸發任何平衡動作
func FindDepth[K, V any](t maps.TreeAnalyable[K, V], key K) (int, bool) {
	depth := 0
	for n := t.GetRoot(); !n.IsSentinel(); depth++ {
		c := t.Compare(key, n.GetKey())
		if c == 0 {
			return depth, true
		}
		if c < 0 {
			n = n.GetLeft()
		} else {
			n = n.GetRight()
		}
	}
	return depth, false
}

// AnalyzeDepth 根據 key 出現機率計算平均搜尋深度
func AnalyzeDepth[K comparable, V any](t maps.TreeAnalyable[K, V], keys map[K]float64) (float64, StepMap[K]) {
	if len(keys) == 0 {
		return 0.0, nil
	}
	step := StepMap[K]{}
	var total, prob float64
	var walk func(n maps.BinaryNodelike[K, V], depth int)
	walk = func(n maps.BinaryNodelike[K, V], depth int) {
		if n.IsSentinel() {
			return
		}
		if p, ok := keys[n.GetKey()]; ok {
			total += float64(depth) * p
			prob += p
			step[n.GetKey()] = depth
		}
		walk(n.GetLeft(), depth+1)
		walk(n.GetRight(), depth+1)
	}
	walk(t.GetRoot(), 0)
	if prob > 0 {
		return total / prob, step
	}
	return 0.0, step
}

// Levels 回傳每層的 key，用於測試與輸出
func Levels[K, V any](t maps.TreeAnalyable[K, V]) [][]K {
	var out [][]K
	level := []maps.BinaryNodelike[K, V]{t.GetRoot()}
	for len(level) > 0 {
		var keys []K
		var next []maps.BinaryNodelike[K, V]
		for _, n := range level {
			if n.IsSentinel() {
				continue
			}
			keys = append(keys, n.GetKey())
			next = append(next, n.GetLeft(), n.GetRight())
		}
		if len(keys) > 0 {
			out = append(out, keys)
		}
		level = next
	}
	return out
}

// RenderLevels 以表格輸出每層的節點，color 為 true 時標示紅黑樹顏色
func RenderLevels[K, V any](w io.Writer, t maps.TreeAnalyable[K, V], maxLevel int, color bool) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Level", "Nodes", "Keys"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)

	level := []maps.BinaryNodelike[K, V]{t.GetRoot()}
	for depth := 0; len(level) > 0 && depth <= maxLevel; depth++ {
		var keys []string
		var next []maps.BinaryNodelike[K, V]
		for _, n := range level {
			if n.IsSentinel() {
				continue
			}
			s := fmt.Sprint(n.GetKey())
			if color && n.GetProperty() == 1 {
				s += "(r)"
			}
			keys = append(keys, s)
			next = append(next, n.GetLeft(), n.GetRight())
		}
		if len(keys) == 0 {
			break
		}
		table.Append([]string{fmt.Sprint(depth), fmt.Sprint(len(keys)), strings.Join(keys, " ")})
		level = next
	}
	table.Render()
}
