package llm

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the Japanese prompt for req. Unknown kinds return ErrInvalidKind.
func BuildPrompt(req Request) (prompt string, err error) {
	_, err = ParseKind(string(req.Kind))
	if err != nil {
		return prompt, err
	}

	age := req.Hints.Age
	if age <= 0 {
		age = DefaultAge
	}
	input := strings.TrimSpace(req.Input)

	switch req.Kind {
	case KindEnhanceExperience:
		prompt = buildExperiencePrompt(age, req.Hints.ReferenceYear, input)
	case KindSuggestSkills:
		prompt = buildSkillsPrompt(age, input)
	case KindOptimizeEducation:
		prompt = buildEducationPrompt(input)
	case KindGenerateSummary:
		prompt = buildSummaryPrompt(age, input, req.Hints)
	case KindImproveQualifications:
		prompt = buildQualificationsPrompt(age, input, req.Hints)
	}

	return prompt, err
}

func buildExperiencePrompt(age, year int, input string) (prompt string) {
	prompt = fmt.Sprintf(`履歴書の職歴欄を、採用担当者に伝わる具体的な文章に書き直してください。

基本情報：
- 年齢：%d歳
- 現在年：%d年
- 入力された職歴：%s

要件：
1. 具体的な成果や数字を盛り込む
2. 「達成」「管理」「企画」「改善」などの行動を表す言葉を使う
3. 転職市場で評価される表現にする
4. 年齢相応の責任範囲を反映する
5. 業界で一般的なキーワードを含める

出力形式：
書き直した職歴の本文のみを日本語で返してください。前置きや説明は不要です。

例：
入力：「営業をやっていました」
出力：「法人向け新規開拓営業として月平均20件の商談を担当。提案型営業により売上前年比120%%を達成。新人3名の育成も担当。」
`, age, year, input)
	return prompt
}

func buildSkillsPrompt(age int, experience string) (prompt string) {
	prompt = fmt.Sprintf(`%d歳で職歴が「%s」の人に合うスキル・強みを提案してください。

要件：
1. 職歴から読み取れる実務スキル
2. 年齢に見合ったマネジメント・リーダーシップのスキル
3. 現在のビジネス動向に合ったスキル
4. 転職市場で需要の高いスキル
5. 具体的で説得力のある表現

出力形式：
スキルを1行に1つずつ、改行区切りで返してください。説明は不要です。

例：
・顧客折衝・提案営業
・プロジェクトマネジメント
・チームリーダーシップ
・データ分析（Excel）
`, age, experience)
	return prompt
}

func buildEducationPrompt(education string) (prompt string) {
	prompt = fmt.Sprintf(`学歴「%s」を履歴書向けの整った表記にしてください。

要件：
1. 学校名・学部・学科を正式名称で書く
2. 専攻や研究内容があれば具体的に書く
3. 特記事項があれば添える
4. 関連する資格や活動があれば提案する

出力形式：
整えた学歴のみを返してください。

例：
入力：「○○大学卒業」
出力：「○○大学 経済学部経済学科 卒業（ゼミ：国際経済学）」
`, education)
	return prompt
}

func buildSummaryPrompt(age int, input string, hints Hints) (prompt string) {
	experience := hints.Experience
	if experience == "" {
		experience = input
	}

	prompt = fmt.Sprintf(`次の情報をもとに、自己PR（職務要約）を作成してください。

年齢：%d歳
職歴：%s
学歴：%s
スキル：%s

要件：
1. 3〜4行の簡潔な要約にする
2. 強みと経験を的確に伝える
3. 転職市場での価値がわかるようにする
4. 年齢に見合った表現にする
5. 具体的な数字や成果を含める

出力形式：
自己PRの本文のみを返してください。
`, age, experience, hints.Education, hints.Skills)
	return prompt
}

func buildQualificationsPrompt(age int, qualifications string, hints Hints) (prompt string) {
	prompt = fmt.Sprintf(`保有資格「%s」に加えて、%d歳で職歴が「%s」の人が取得を検討すべき資格を提案してください。

要件：
1. 現在の職歴と年齢に関連がある
2. キャリアアップにつながる
3. 業界で評価されている
4. 実務で役立つ
5. 取得の難易度も考慮する

出力形式：
おすすめの資格を1行に1つずつ、改行区切りで返してください。理由は括弧内に短く添えてください。

例：
・TOEIC 750点以上（海外とのやり取りに対応）
・基本情報技術者試験（IT基礎知識の証明）
・日商簿記2級（財務・管理会計の理解）
`, qualifications, age, hints.Experience)
	return prompt
}
