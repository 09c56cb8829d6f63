package analyTool

import (
	"encoding/csv"
	"fmt"
	"slices"

	"github.com/Hakuto4838/DataStructures.git/maps"
)

type StepMap[K comparable] map[K]int

// FindStep 計算找到指定 key 的總步數和各層步數
func FindStep[K, V any](sl maps.Analyable[K, V], key K) (step int, level []int) {
	cur := sl.GetHead()
	if cur == nil {
		return 0, []int{}
	}

	totalSteps := 0
	_, maxLevel := sl.GetMaxStats()
	stepsPerLevel := make([]int, maxLevel+1)

	// 從最高層開始搜尋
	for h := maxLevel; h >= 0; h-- {
		levelSteps := 0
		for cur != nil {
			nextNode := cur.GetNextAt(int32(h))
			if nextNode == nil || sl.Compare(nextNode.GetKey(), key) >= 0 {
				break
			}
			cur = nextNode
			levelSteps++
		}

		if cur != nil {
			nextNode := cur.GetNextAt(int32(h))
			if nextNode != nil && sl.Compare(nextNode.GetKey(), key) == 0 {
				levelSteps++ // 加上最後一步
				stepsPerLevel[h] = levelSteps
				totalSteps += levelSteps
				return totalSteps, stepsPerLevel
			}
		}

		stepsPerLevel[h] = levelSteps
		totalSteps += levelSteps + 1 // 加上向下移動
	}

	return totalSteps, stepsPerLevel
}

// AnalyzeStep 根據 key 出現機率計算平均搜尋步數
func AnalyzeStep[K comparable, V any](sl maps.Analyable[K, V], keys map[K]float64) (float64, StepMap[K]) {
	if len(keys) == 0 {
		return 0.0, nil
	}

	step := StepMap[K]{}
	var totalExpectedSteps float64
	var totalProbability float64

	// 遞迴搜尋所有 node，若存在 key 則計算期望步數
	var dfs func(node maps.Nodelike[K, V], level int, steps int, head bool)
	dfs = func(node maps.Nodelike[K, V], level int, steps int, head bool) {
		if node == nil {
			return
		}
		if !head && node.GetLevel() == int32(level) { // 初次到來
			if p, ok := keys[node.GetKey()]; ok {
				totalExpectedSteps += float64(steps) * p
				totalProbability += p
				step[node.GetKey()] = steps
			}
		}
		if level > 0 { // 下降也算一步
			dfs(node, level-1, steps+1, head)
		}
		nextNode := node.GetNextAt(int32(level))
		if nextNode != nil && nextNode.GetLevel() == int32(level) {
			// 若下一個節點高度較高，則不屬於本次走訪
			dfs(nextNode, level, steps+1, false)
		}
	}

	_, maxLevel := sl.GetMaxStats()
	if head := sl.GetHead(); head != nil {
		dfs(head, maxLevel, 0, true)
	}

	if totalProbability > 0 {
		return totalExpectedSteps / totalProbability, step
	}
	return 0.0, step
}

// PrintSkipList 打印 skip list 的結構
func PrintSkipList[K, V any](sl maps.Analyable[K, V], maxLevel, maxNodes int) {
	_, actualMaxLevel := sl.GetMaxStats()
	maxLevel = min(maxLevel, actualMaxLevel)
	output := make([]string, maxLevel+1)
	for i := maxLevel; i >= 0; i-- {
		output[i] = fmt.Sprintf("level %d : head ->", i)
	}

	head := sl.GetHead()
	if head == nil || sl.IsEmpty() {
		fmt.Println("Skip list 為空")
		return
	}

	node := head.GetNextAt(0)
	for count := 0; node != nil && count < maxNodes; count++ {
		lv := int(node.GetLevel())
		for i := range output {
			if i <= lv {
				output[i] += fmt.Sprintf("%4v ->", node.GetKey())
			} else {
				output[i] += "      ->"
			}
		}
		node = node.GetNextAt(0)
	}

	for i := maxLevel; i >= 0; i-- {
		fmt.Println(output[i])
	}
}

// PrintLink 打印 skip list 每一層的連結
func PrintLink[K, V any](sl maps.Analyable[K, V], maxLevel, maxNodes int) {
	head := sl.GetHead()
	if head == nil {
		fmt.Println("Skip list 為空")
		return
	}

	maxLevel = min(maxLevel, int(head.GetLevel()))
	for i := maxLevel; i >= 0; i-- {
		fmt.Printf("level %d : head ->", i)
		node := head.GetNextAt(int32(i))
		for count := 0; node != nil && count < maxNodes; count++ {
			fmt.Printf(" %v ->", node.GetKey())
			node = node.GetNextAt(int32(i))
		}
		fmt.Println()
	}
}

// CheckStruct 檢查 skip list 的結構是否正確
func CheckStruct[K, V any](sl maps.Analyable[K, V]) bool {
	size, maxLevel := sl.GetMaxStats()
	head := sl.GetHead()
	if head == nil {
		return true
	}

	// 每一層上一個看到的節點
	list := make([]maps.Nodelike[K, V], maxLevel+1)
	for i := range list {
		list[i] = head
	}

	count := 0
	var prev maps.Nodelike[K, V]
	for node := head.GetNextAt(0); node != nil; node = node.GetNextAt(0) {
		nodelv := node.GetLevel()
		if nodelv > int32(maxLevel) {
			fmt.Printf("nodelv > level, nodelv: %d, level: %d\n", nodelv, maxLevel)
			return false
		}
		if prev != nil && sl.Compare(prev.GetKey(), node.GetKey()) >= 0 {
			fmt.Printf("keys out of order: %v, %v\n", prev.GetKey(), node.GetKey())
			return false
		}
		for i := 1; i <= int(nodelv); i++ {
			if list[i].GetNextAt(int32(i)) != node {
				fmt.Printf("level %d skips node %v\n", i, node.GetKey())
				return false
			}
			list[i] = node
		}
		prev = node
		count++
	}
	// 每一層最後一個節點之後不應再有節點
	for i := 1; i <= maxLevel; i++ {
		if list[i].GetNextAt(int32(i)) != nil {
			fmt.Printf("level %d has a node missing from level 0\n", i)
			return false
		}
	}
	if count != size {
		fmt.Printf("node count %d, size %d\n", count, size)
		return false
	}
	return true
}

// CountLevel 統計每層的節點數量
func CountLevel[K, V any](sl maps.Analyable[K, V]) []int {
	maxNodes, maxLevel := sl.GetMaxStats()
	levelCounts := make([]int, maxLevel+1)

	for current := sl.GetHead().GetNextAt(0); current != nil; current = current.GetNextAt(0) {
		for i := int32(0); i <= current.GetLevel() && int(i) < len(levelCounts); i++ {
			levelCounts[i]++
		}
	}

	fmt.Printf("層級節點統計 (總節點數: %d, 最高層級: %d):\n", maxNodes, maxLevel)
	for i := maxLevel; i >= 0; i-- {
		fmt.Printf("Level %2d: %d 個節點\n", i, levelCounts[i])
	}
	return levelCounts
}

// SkipListToCSV 每層一列，欄位對齊 level 0 的節點
func SkipListToCSV[K, V any](sl maps.Analyable[K, V], writer *csv.Writer) error {
	_, maxLevel := sl.GetMaxStats()
	rows := make([][]string, maxLevel+1)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("level %d", i)}
	}
	for node := sl.GetHead().GetNextAt(0); node != nil; node = node.GetNextAt(0) {
		for i := range rows {
			if i <= int(node.GetLevel()) {
				rows[i] = append(rows[i], fmt.Sprint(node.GetKey()))
			} else {
				rows[i] = append(rows[i], "")
			}
		}
	}
	for i := maxLevel; i >= 0; i-- {
		if err := writer.Write(rows[i]); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// Print 依 key 排序輸出步數
func (mp StepMap[K]) Print(compare func(a, b K) int) {
	keys := make([]K, 0, len(mp))
	for k := range mp {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compare)

	for _, k := range keys {
		fmt.Printf("%4v  ", k)
	}
	fmt.Println()
	for _, k := range keys {
		fmt.Printf("%4d  ", mp[k])
	}
	fmt.Println()
}
