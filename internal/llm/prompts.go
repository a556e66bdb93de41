package llm

import "fmt"

const titlePromptTemplate = `You are tasked with rewriting the title of a YouTube video to make it more catchy and trendy, enticing viewers to click on the video.
However, you must maintain the original content of the title without changing any information. Your goal is to repackage the title
in a way that captures attention, generates curiosity, and encourages engagement. Focus on using compelling language, captivating phrases, and
an engaging tone to make the title more appealing to a wider audience.

Remember, your objective is not to alter the content of the title but to enhance its presentation to attract more viewers. Keep the original
message intact while infusing it with energy, excitement, and allure to entice users to click on the video.

Return only the title. The title should not be preceded or followed by any filler sentences.

Given below are the title and description of the video. Use both of them to generate the new title.

Video title: %s

Description: %s`

const descriptionPromptTemplate = `You are tasked with rewriting the description of a YouTube video to make it more catchy and trendy, enticing viewers to click on the video.
However, you must maintain the original content of the description without changing any information. Your goal is to repackage the description
in a way that captures attention, generates curiosity, and encourages engagement. Focus on using compelling language, captivating phrases, and
an engaging tone to make the description more appealing to a wider audience.

Remember, your objective is not to alter the content of the description but to enhance its presentation to attract more viewers. Keep the original
message intact while infusing it with energy, excitement, and allure to entice users to click on the video.

Remove any url links and promotional messages.

Return only the description. The description should not be preceded or followed by any filler sentences.

Given below are the title and description of the video. Use both of them to generate the new description.

Video title: %s

Description: %s`

const hashtagsPromptTemplate = `Suggest relevant hashtags for a YouTube video based on the provided description and title.
The hashtags should be concise, descriptive, and directly related to the content of the video.
Ensure that the hashtags are appropriate for the target audience and aligned with the video's topic.
Limit the number of hashtags to a maximum of 15.

Return only the hashtags. The hashtags should not be preceded or followed by any filler sentences.

Given below are the title and description of the video. Use both of them to generate the hashtags.

Video title: %s

Description: %s`

// TitlePrompt embeds the raw title and description verbatim.
func TitlePrompt(title, description string) string {
	return fmt.Sprintf(titlePromptTemplate, title, description)
}

// DescriptionPrompt embeds the raw title and description verbatim.
func DescriptionPrompt(title, description string) string {
	return fmt.Sprintf(descriptionPromptTemplate, title, description)
}

// HashtagsPrompt embeds the raw title and description verbatim.
func HashtagsPrompt(title, description string) string {
	return fmt.Sprintf(hashtagsPromptTemplate, title, description)
}
