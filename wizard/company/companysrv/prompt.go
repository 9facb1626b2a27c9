package companysrv

import "fmt"

// Prompt and fallback templates are business configuration carried over from
// the product: Korean in, Korean out. The research prompt demands a single
// camelCase-keyed JSON object with "-" placeholders for unknown fields.

const researchPromptTemplate = `###지시사항
%s 기업의 채용 공고를 조사하여, 구직자가 이력서 작성에 꼭 필요한 정보를 JSON 형식(camelCase key)으로 정리하십시오.
JSON을 출력할 때 '''JSON과 같이 JSON 영역을 출력하지 않고 구조만 출력하십시오.
JSON의 value는 모두 한국어로 작성하십시오.

###조건
- 회사 정보는 상단에 한 번만 기재하고, 채용 직무별 정보는 jobs 배열에 각 직무를 개별 객체로 작성
- 없는 정보는 "-"(하이픈)으로 표기
- 모든 날짜는 YYYY-MM-DD 형식
- responsibilities, qualifications, preferredQualifications, requiredSkills, selectionProcess, interviewDates, benefits는 배열로 작성
- 급여, 모집 인원, 근무 시간 등 수치는 정확히 기재하되, 정보가 없으면 "-"
- 공식 채용 공고, 기업 채용 페이지, 신뢰 가능한 채용 포털 등 공식·신뢰도 높은 출처만 사용
- 불필요한 홍보 문구, 추상적 표현, 채용 동향·정책 해석은 제외
- 출처 URL은 source 배열에 모두 기재

###출력 구조(JSON)
{
  "companyName": "",
  "companyIndustry": "",
  "companySize": "",
  "companyWebsite": "",
  "companyDescription": "",
  "idealCandidateProfile": "",
  "jobs": [
    {
      "jobTitle": "",
      "jobCategory": "",
      "hiringType": "",
      "numberOfPositions": "",
      "recruitmentReason": "",
      "responsibilities": [],
      "qualifications": [],
      "preferredQualifications": [],
      "requiredSkills": [],
      "applicationStartDate": "",
      "applicationEndDate": "",
      "selectionProcess": [],
      "interviewDates": [],
      "resultAnnouncementDate": "",
      "workLocation": "",
      "workMode": "",
      "workingHours": "",
      "salaryRange": "",
      "benefits": []
    }, ...
  ],
  "source": []
}
`

const fallbackBody = `

## 채용 정보 분석

### 주요 채용 직무
- 개발자, 기획자, 디자이너 등 IT 직군
- 마케팅, 영업, 운영 관리 직군

### 근무 조건
- 주 5일 근무제
- 유연 근무제 운영
- 다양한 복리후생 제공

### 채용 절차
- 서류전형 → 면접전형 → 최종 합격

`

func buildResearchPrompt(companyName string) string {
	return fmt.Sprintf(researchPromptTemplate, companyName)
}

// demoFallback is the canned research text returned when no provider
// credentials are configured.
func demoFallback(companyName string) string {
	return fmt.Sprintf("%s 기업 정보 조사 결과 (더미 데이터):", companyName) +
		fallbackBody + "*실제 서비스 이용 시에는 OpenAI API 키가 필요합니다."
}

// errorFallback is the canned research text returned when the provider call
// itself fails.
func errorFallback(companyName string) string {
	return fmt.Sprintf("%s 기업 정보 조사 결과 (더미 데이터):", companyName) +
		fallbackBody + "*API 오류로 인해 더미 데이터가 표시되었습니다."
}
